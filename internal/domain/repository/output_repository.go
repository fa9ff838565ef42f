package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OutputRepository define el puerto de persistencia para Output y sus líneas.
type OutputRepository interface {
	Create(output *entity.Output) error // cabecera + líneas
	GetByID(id string) (*entity.Output, error)
	Update(output *entity.Output) error // solo cabecera
	List(limit, offset int) ([]*entity.Output, error)
	CreateItem(item *entity.OutputItem) error
	UpdateItem(item *entity.OutputItem) error
	DeleteItem(itemID string) error
}
