package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para aplicar un pago contra una compra o venta.
type CreatePaymentRequest struct {
	TransactionID   string          `json:"transaction_id" validate:"required,uuid4"`
	TransactionType string          `json:"transaction_type" validate:"required,oneof=purchase sale"`
	PaymentMethod   string          `json:"payment_method" validate:"required,oneof=cash card qr"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate     time.Time       `json:"payment_date" validate:"required"`
}

// UpdatePaymentRequest edición correctiva de un pago ya registrado.
// No re-aplica el pago contra el saldo: solo corrige el registro.
type UpdatePaymentRequest struct {
	PaymentMethod *string    `json:"payment_method" validate:"omitempty,oneof=cash card qr"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	TransactionType string          `json:"transaction_type"`
	PaymentMethod   string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PaymentListResponse lista de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BalanceResponse saldo resultante tras aplicar un pago.
type BalanceResponse struct {
	TransactionID   string          `json:"transaction_id"`
	TransactionType string          `json:"transaction_type"`
	Total           decimal.Decimal `json:"total"`
	BalanceDue      decimal.Decimal `json:"balance_due"`
	Status          string          `json:"status"`
}
