package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Cada bodega pertenece a una agencia.
type Warehouse struct {
	ID        string
	AgencyID  string
	Name      string
	Location  string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
