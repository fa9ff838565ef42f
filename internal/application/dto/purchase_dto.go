package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra con sus líneas.
// El total queda fijo al crearla; el saldo pendiente inicia igual al total.
type CreatePurchaseRequest struct {
	SupplierID    string                   `json:"supplier_id" validate:"required,uuid4"`
	WarehouseID   string                   `json:"warehouse_id" validate:"required,uuid4"`
	PurchaseType  string                   `json:"purchase_type" validate:"required,oneof=full_payment partial_payment"`
	PurchaseDate  time.Time                `json:"purchase_date" validate:"required"`
	InvoiceNumber string                   `json:"invoice_number" validate:"required,numeric"`
	Items         []TransactionLineRequest `json:"purchase_items" validate:"required,min=1,dive"`
}

// UpdatePurchaseRequest actualización de cabecera y/o líneas de una compra.
// Items en nil deja las líneas como están; no se permite modificar Total ni BalanceDue.
type UpdatePurchaseRequest struct {
	PurchaseDate  *time.Time               `json:"purchase_date"`
	InvoiceNumber *string                  `json:"invoice_number" validate:"omitempty,numeric"`
	Items         []TransactionLineRequest `json:"purchase_items" validate:"omitempty,dive"`
}

// PurchaseResponse salida de una compra con sus líneas.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	BuyerID       string                 `json:"buyer_id"`
	SupplierID    string                 `json:"supplier_id"`
	WarehouseID   string                 `json:"warehouse_id"`
	PurchaseType  string                 `json:"purchase_type"`
	Status        string                 `json:"status"`
	PurchaseDate  time.Time              `json:"purchase_date"`
	InvoiceNumber string                 `json:"invoice_number"`
	Total         decimal.Decimal        `json:"total"`
	BalanceDue    decimal.Decimal        `json:"balance_due"`
	Items         []PurchaseItemResponse `json:"purchase_items"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	EnteredStock int64           `json:"entered_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
