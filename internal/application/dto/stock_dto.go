package dto

import "time"

// RegisterMovementRequest entrada para aplicar un movimiento directo sobre una ficha de stock.
// Kind: RECEIVE | DISPATCH | MARK_DAMAGED | ADJUST_RESERVATION.
// Quantity admite signo solo para ADJUST_RESERVATION.
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	Kind        string `json:"kind" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required"`
}

// ConfigureStockRequest crea o reconfigura la ficha de stock de un producto en una bodega.
type ConfigureStockRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid4"`
	WarehouseID  string `json:"warehouse_id" validate:"required,uuid4"`
	MinimumStock int64  `json:"minimum_stock" validate:"min=0"`
	MaximumStock int64  `json:"maximum_stock" validate:"min=0"`
}

// StockResponse ficha de stock de un producto en una bodega.
type StockResponse struct {
	ProductID      string    `json:"product_id"`
	WarehouseID    string    `json:"warehouse_id"`
	Stock          int64     `json:"stock"`
	ReservedStock  int64     `json:"reserved_stock"`
	AvailableStock int64     `json:"available_stock"`
	DamagedStock   int64     `json:"damaged_stock"`
	MinimumStock   int64     `json:"minimum_stock"`
	MaximumStock   int64     `json:"maximum_stock"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StockListResponse lista paginada de fichas de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
