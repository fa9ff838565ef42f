package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry representa una entrada de mercadería a bodega (recepción),
// opcionalmente vinculada a una compra.
type Entry struct {
	ID                string
	WarehouseKeeperID string
	SupplierID        string
	WarehouseID       string
	PurchaseID        string // vacío si la entrada no proviene de una compra
	EntryDate         time.Time
	InvoiceNumber     string
	Note              string
	Items             []EntryItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EntryItem es una línea de entrada. Si PurchaseItemID no está vacío,
// la recepción descuenta contra esa línea de compra.
type EntryItem struct {
	ID             string
	EntryID        string
	ProductID      string
	PurchaseItemID string
	Quantity       int64
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
}
