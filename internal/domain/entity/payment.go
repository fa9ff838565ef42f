package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago y tipos de transacción.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodQR   = "qr"

	TransactionTypePurchase = "purchase"
	TransactionTypeSale     = "sale"
)

// Payment representa un pago aplicado contra el saldo de una compra o venta.
// Una transacción admite varios pagos parciales.
type Payment struct {
	ID              string
	TransactionID   string
	TransactionType string // purchase | sale
	PaymentMethod   string
	Amount          decimal.Decimal
	PaymentDate     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
