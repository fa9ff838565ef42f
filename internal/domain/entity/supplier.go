package entity

import "time"

// Supplier representa un proveedor de mercadería.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	NIT       string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
