package dto

import "time"

// RegisterUserRequest entrada para registrar un usuario.
type RegisterUserRequest struct {
	FirstName string `json:"first_name" validate:"required,alpha,max=255"`
	LastName  string `json:"last_name" validate:"required,alpha,max=255"`
	CI        string `json:"ci" validate:"required,min=7,max=50"`
	Phone     string `json:"phone" validate:"required,numeric,len=8"`
	Email     string `json:"email" validate:"required,email,max=50"`
	Address   string `json:"address" validate:"required,max=150"`
	Role      string `json:"role" validate:"required,oneof=administrador almacenero vendedor cajero"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CI        string    `json:"ci"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
