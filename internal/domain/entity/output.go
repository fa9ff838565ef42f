package entity

import "time"

// Output representa una salida de mercadería de bodega (despacho).
type Output struct {
	ID                string
	WarehouseKeeperID string
	ClientID          string
	WarehouseID       string
	OutputDate        time.Time
	Items             []OutputItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OutputItem es una línea de salida. Si SaleItemID no está vacío,
// el despacho descuenta stock reservado de esa línea de venta.
type OutputItem struct {
	ID         string
	OutputID   string
	ProductID  string
	SaleItemID string
	Quantity   int64
}
