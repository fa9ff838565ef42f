package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase y sus líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error // cabecera + líneas
	GetByID(id string) (*entity.Purchase, error)
	// GetForUpdate bloquea la fila de la compra (saldo) para update.
	GetForUpdate(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error // solo cabecera
	// UpdateBalance actualiza saldo pendiente y estado en una sola escritura.
	UpdateBalance(id string, balanceDue decimal.Decimal, status string) error
	List(status string, limit, offset int) ([]*entity.Purchase, error)
	CreateItem(item *entity.PurchaseItem) error
	UpdateItem(item *entity.PurchaseItem) error
	DeleteItem(itemID string) error
	GetItemForUpdate(itemID string) (*entity.PurchaseItem, error)
	UpdateItemEnteredStock(itemID string, enteredStock int64) error
}
