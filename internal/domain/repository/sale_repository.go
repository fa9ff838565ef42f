package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error // cabecera + líneas
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la fila de la venta (saldo/estado) para update.
	GetForUpdate(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error // solo cabecera
	UpdateBalance(id string, balanceDue decimal.Decimal, status string) error
	UpdateStatus(id, status string) error
	List(status string, limit, offset int) ([]*entity.Sale, error)
	CreateItem(item *entity.SaleItem) error
	UpdateItem(item *entity.SaleItem) error
	DeleteItem(itemID string) error
	GetItemForUpdate(itemID string) (*entity.SaleItem, error)
	UpdateItemDispatchedStock(itemID string, dispatchedStock int64) error
}
