package entity

import "time"

// ProductStock representa el estado de inventario de un producto en una bodega
// (forma normalizada: una fila por producto+bodega).
// Invariante: Stock = AvailableStock + ReservedStock + DamagedStock.
// MinimumStock/MaximumStock en 0 significan "sin restricción".
type ProductStock struct {
	ProductID      string
	WarehouseID    string
	Stock          int64 // unidades físicas totales
	ReservedStock  int64 // unidades comprometidas en ventas confirmadas
	AvailableStock int64 // unidades libres para despachar
	DamagedStock   int64 // unidades marcadas como no vendibles
	MinimumStock   int64
	MaximumStock   int64
	UpdatedAt      time.Time
}
