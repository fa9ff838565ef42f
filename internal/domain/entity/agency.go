package entity

import "time"

// Agency representa una sucursal de la empresa; las bodegas pertenecen a una agencia.
type Agency struct {
	ID        string
	Name      string
	Location  string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
