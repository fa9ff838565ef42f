package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. Nace en estado generated
// (sin efecto sobre el stock); confirmarla reserva las unidades vendidas.
type CreateSaleRequest struct {
	ClientID       string                   `json:"client_id" validate:"required,uuid4"`
	WarehouseID    string                   `json:"warehouse_id" validate:"required,uuid4"`
	SellingChannel string                   `json:"selling_channel" validate:"required"`
	SaleType       string                   `json:"sale_type" validate:"required,oneof=full_payment partial_payment"`
	SaleDate       time.Time                `json:"sale_date" validate:"required"`
	Items          []TransactionLineRequest `json:"sale_items" validate:"required,min=1,dive"`
}

// UpdateSaleRequest actualización de cabecera y/o líneas de una venta.
// Status debe venir siempre que se actualicen líneas: decide si los deltas
// se aplican como ajustes de reserva (venta confirmada) o solo sobre las líneas.
type UpdateSaleRequest struct {
	SaleDate *time.Time               `json:"sale_date"`
	Status   *string                  `json:"status" validate:"omitempty,oneof=generated done finished"`
	Items    []TransactionLineRequest `json:"sale_items" validate:"omitempty,dive"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	SellerID       string             `json:"seller_id"`
	WarehouseID    string             `json:"warehouse_id"`
	SellingChannel string             `json:"selling_channel"`
	Status         string             `json:"status"`
	SaleType       string             `json:"sale_type"`
	SaleDate       time.Time          `json:"sale_date"`
	Total          decimal.Decimal    `json:"total"`
	BalanceDue     decimal.Decimal    `json:"balance_due"`
	Items          []SaleItemResponse `json:"sale_items"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	DispatchedStock int64           `json:"dispatched_stock"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
