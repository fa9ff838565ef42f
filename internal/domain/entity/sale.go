package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de venta. Confirmar una venta (generated -> done) reserva stock;
// el saldo en cero la lleva a finished. No hay transiciones hacia atrás.
const (
	SaleStatusGenerated = "generated"
	SaleStatusDone      = "done"
	SaleStatusFinished  = "finished"
)

// Sale representa una venta a cliente. Total queda fijo al crearla;
// BalanceDue baja con cada pago aplicado y nunca es negativo.
type Sale struct {
	ID             string
	ClientID       string
	SellerID       string
	WarehouseID    string
	SellingChannel string
	Status         string
	SaleType       string
	SaleDate       time.Time
	Total          decimal.Decimal
	BalanceDue     decimal.Decimal
	Items          []SaleItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem es una línea de venta. DispatchedStock acumula lo ya despachado
// vía salidas y nunca supera Quantity.
type SaleItem struct {
	ID              string
	SaleID          string
	ProductID       string
	Quantity        int64
	DispatchedStock int64
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
}
