package entity

import "time"

// Roles de usuario.
const (
	RoleAdministrador = "administrador"
	RoleAlmacenero    = "almacenero"
	RoleVendedor      = "vendedor"
	RoleCajero        = "cajero"
)

// User representa un usuario del sistema con su rol.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	CI           string
	Phone        string
	Email        string
	Address      string
	Role         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanCreateSale indica si el usuario puede registrar ventas.
func (u *User) CanCreateSale() bool {
	return u.IsActive && (u.Role == RoleVendedor || u.Role == RoleAdministrador)
}
