package dto

import "time"

// CreateAgencyRequest entrada para crear una agencia.
type CreateAgencyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Location string `json:"location" validate:"required,min=1,max=255"`
	City     string `json:"city" validate:"required,max=5"`
}

// UpdateAgencyRequest entrada para actualizar una agencia.
type UpdateAgencyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
	City     *string `json:"city" validate:"omitempty,max=5"`
}

// AgencyResponse salida de una agencia.
type AgencyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgencyListResponse lista paginada de agencias.
type AgencyListResponse struct {
	Items []AgencyResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
