package inventory

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func stockToResponse(s *entity.ProductStock) *dto.StockResponse {
	return &dto.StockResponse{
		ProductID:      s.ProductID,
		WarehouseID:    s.WarehouseID,
		Stock:          s.Stock,
		ReservedStock:  s.ReservedStock,
		AvailableStock: s.AvailableStock,
		DamagedStock:   s.DamagedStock,
		MinimumStock:   s.MinimumStock,
		MaximumStock:   s.MaximumStock,
		UpdatedAt:      s.UpdatedAt,
	}
}

func entryToResponse(e *entity.Entry) *dto.EntryResponse {
	items := make([]dto.EntryItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, dto.EntryItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			PurchaseItemID: it.PurchaseItemID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
		})
	}
	return &dto.EntryResponse{
		ID:                e.ID,
		WarehouseKeeperID: e.WarehouseKeeperID,
		SupplierID:        e.SupplierID,
		WarehouseID:       e.WarehouseID,
		PurchaseID:        e.PurchaseID,
		EntryDate:         e.EntryDate,
		InvoiceNumber:     e.InvoiceNumber,
		Note:              e.Note,
		Items:             items,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func outputToResponse(o *entity.Output) *dto.OutputResponse {
	items := make([]dto.OutputItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OutputItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			SaleItemID: it.SaleItemID,
			Quantity:   it.Quantity,
		})
	}
	return &dto.OutputResponse{
		ID:                o.ID,
		WarehouseKeeperID: o.WarehouseKeeperID,
		ClientID:          o.ClientID,
		WarehouseID:       o.WarehouseID,
		OutputDate:        o.OutputDate,
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
