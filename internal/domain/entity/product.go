package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock se maneja por bodega
// en ProductStock; aquí solo viven los datos descriptivos y la banda de precios.
type Product struct {
	ID                string
	Code              string // código único
	Name              string
	UnitOfMeasurement string
	Description       string
	MinimumSalePrice  decimal.Decimal
	MaximumSalePrice  decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
