package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EntryRepository define el puerto de persistencia para Entry y sus líneas.
type EntryRepository interface {
	Create(entry *entity.Entry) error // cabecera + líneas
	GetByID(id string) (*entity.Entry, error)
	Update(entry *entity.Entry) error // solo cabecera
	List(limit, offset int) ([]*entity.Entry, error)
	CreateItem(item *entity.EntryItem) error
	UpdateItem(item *entity.EntryItem) error
	DeleteItem(itemID string) error
}
