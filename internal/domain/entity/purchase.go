package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y tipos de compra.
const (
	PurchaseStatusDone     = "done"     // realizada, con saldo pendiente
	PurchaseStatusFinished = "finished" // saldo en cero

	PaymentTermFull    = "full_payment"
	PaymentTermPartial = "partial_payment"
)

// Purchase representa una compra a proveedor. Total queda fijo al crearla;
// BalanceDue baja con cada pago aplicado y nunca es negativo.
type Purchase struct {
	ID            string
	BuyerID       string
	SupplierID    string
	WarehouseID   string
	PurchaseType  string
	Status        string
	PurchaseDate  time.Time
	InvoiceNumber string
	Total         decimal.Decimal
	BalanceDue    decimal.Decimal
	Items         []PurchaseItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PurchaseItem es una línea de compra. EnteredStock acumula lo ya recibido
// vía entradas y nunca supera Quantity.
type PurchaseItem struct {
	ID           string
	PurchaseID   string
	ProductID    string
	Quantity     int64
	EnteredStock int64
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
}
