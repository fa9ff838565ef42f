package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto de catálogo.
// El stock por bodega se maneja aparte (fichas de stock y movimientos).
type CreateProductRequest struct {
	Code              string          `json:"code" validate:"required,min=1,max=50"`
	Name              string          `json:"name" validate:"required,min=1,max=150"`
	UnitOfMeasurement string          `json:"unit_of_measurement" validate:"required,max=10"`
	Description       string          `json:"description"`
	MinimumSalePrice  decimal.Decimal `json:"minimum_sale_price"`
	MaximumSalePrice  decimal.Decimal `json:"maximum_sale_price"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=150"`
	UnitOfMeasurement *string          `json:"unit_of_measurement" validate:"omitempty,max=10"`
	Description       *string          `json:"description"`
	MinimumSalePrice  *decimal.Decimal `json:"minimum_sale_price"`
	MaximumSalePrice  *decimal.Decimal `json:"maximum_sale_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	UnitOfMeasurement string          `json:"unit_of_measurement"`
	Description       string          `json:"description,omitempty"`
	MinimumSalePrice  decimal.Decimal `json:"minimum_sale_price"`
	MaximumSalePrice  decimal.Decimal `json:"maximum_sale_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
