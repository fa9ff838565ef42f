package entity

import "time"

// Tipos de cliente.
const (
	ClientTypeDistribution = "distribution"
	ClientTypeShowroom     = "showroom"
	ClientTypeProjects     = "projects"
)

// Client representa un cliente al que se le vende o despacha mercadería.
type Client struct {
	ID         string
	Name       string
	Phone      string
	NIT        string
	Email      string
	Address    string
	ClientType string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
