package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Phone      string `json:"phone" validate:"omitempty,numeric,len=8"`
	NIT        string `json:"nit" validate:"required,min=7,max=50"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"max=150"`
	ClientType string `json:"client_type" validate:"required,oneof=distribution showroom projects"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,numeric,len=8"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Address    *string `json:"address" validate:"omitempty,max=150"`
	ClientType *string `json:"client_type" validate:"omitempty,oneof=distribution showroom projects"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	NIT        string    `json:"nit"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	ClientType string    `json:"client_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
