package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionLineRequest línea de una transacción multi-línea (entrada, salida,
// compra o venta). ID vacío significa línea nueva; en actualizaciones, las líneas
// existentes ausentes del payload se eliminan revirtiendo su efecto sobre el stock.
type TransactionLineRequest struct {
	ID         string          `json:"id" validate:"omitempty,uuid4"`
	ProductID  string          `json:"product_id" validate:"required,uuid4"`
	Quantity   int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CreateEntryRequest entrada para registrar una recepción de mercadería.
// PurchaseID y los PurchaseItemID por línea vinculan la recepción a una compra.
type CreateEntryRequest struct {
	SupplierID    string             `json:"supplier_id" validate:"required,uuid4"`
	WarehouseID   string             `json:"warehouse_id" validate:"required,uuid4"`
	PurchaseID    string             `json:"purchase_id" validate:"omitempty,uuid4"`
	EntryDate     time.Time          `json:"entry_date" validate:"required"`
	InvoiceNumber string             `json:"invoice_number" validate:"required,numeric"`
	Note          string             `json:"note" validate:"max=300"`
	Items         []EntryLineRequest `json:"entry_items" validate:"required,min=1,dive"`
}

// EntryLineRequest línea de entrada; extiende la línea genérica con el vínculo a compra.
type EntryLineRequest struct {
	ID             string          `json:"id" validate:"omitempty,uuid4"`
	ProductID      string          `json:"product_id" validate:"required,uuid4"`
	PurchaseItemID string          `json:"purchase_item_id" validate:"omitempty,uuid4"`
	Quantity       int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// UpdateEntryRequest actualización de cabecera y/o líneas de una entrada.
// Items en nil deja las líneas como están.
type UpdateEntryRequest struct {
	EntryDate     *time.Time         `json:"entry_date"`
	InvoiceNumber *string            `json:"invoice_number" validate:"omitempty,numeric"`
	Note          *string            `json:"note" validate:"omitempty,max=300"`
	Items         []EntryLineRequest `json:"entry_items" validate:"omitempty,dive"`
}

// EntryResponse salida de una entrada con sus líneas.
type EntryResponse struct {
	ID                string              `json:"id"`
	WarehouseKeeperID string              `json:"warehouse_keeper_id"`
	SupplierID        string              `json:"supplier_id"`
	WarehouseID       string              `json:"warehouse_id"`
	PurchaseID        string              `json:"purchase_id,omitempty"`
	EntryDate         time.Time           `json:"entry_date"`
	InvoiceNumber     string              `json:"invoice_number"`
	Note              string              `json:"note,omitempty"`
	Items             []EntryItemResponse `json:"entry_items"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// EntryItemResponse línea de entrada en respuestas.
type EntryItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	PurchaseItemID string          `json:"purchase_item_id,omitempty"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// EntryListResponse lista paginada de entradas.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateOutputRequest entrada para registrar un despacho de mercadería.
type CreateOutputRequest struct {
	ClientID    string              `json:"client_id" validate:"required,uuid4"`
	WarehouseID string              `json:"warehouse_id" validate:"required,uuid4"`
	OutputDate  time.Time           `json:"output_date" validate:"required"`
	Items       []OutputLineRequest `json:"output_items" validate:"required,min=1,dive"`
}

// OutputLineRequest línea de salida; SaleItemID la vincula a una línea de venta confirmada.
type OutputLineRequest struct {
	ID         string `json:"id" validate:"omitempty,uuid4"`
	ProductID  string `json:"product_id" validate:"required,uuid4"`
	SaleItemID string `json:"sale_item_id" validate:"omitempty,uuid4"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
}

// UpdateOutputRequest actualización de cabecera y/o líneas de una salida.
type UpdateOutputRequest struct {
	OutputDate *time.Time          `json:"output_date"`
	Items      []OutputLineRequest `json:"output_items" validate:"omitempty,dive"`
}

// OutputResponse salida (despacho) con sus líneas.
type OutputResponse struct {
	ID                string               `json:"id"`
	WarehouseKeeperID string               `json:"warehouse_keeper_id"`
	ClientID          string               `json:"client_id"`
	WarehouseID       string               `json:"warehouse_id"`
	OutputDate        time.Time            `json:"output_date"`
	Items             []OutputItemResponse `json:"output_items"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// OutputItemResponse línea de salida en respuestas.
type OutputItemResponse struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	SaleItemID string `json:"sale_item_id,omitempty"`
	Quantity   int64  `json:"quantity"`
}

// OutputListResponse lista paginada de salidas.
type OutputListResponse struct {
	Items []OutputResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
