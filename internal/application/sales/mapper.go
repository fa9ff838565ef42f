package sales

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func purchaseToResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			EnteredStock: it.EnteredStock,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		BuyerID:       p.BuyerID,
		SupplierID:    p.SupplierID,
		WarehouseID:   p.WarehouseID,
		PurchaseType:  p.PurchaseType,
		Status:        p.Status,
		PurchaseDate:  p.PurchaseDate,
		InvoiceNumber: p.InvoiceNumber,
		Total:         p.Total,
		BalanceDue:    p.BalanceDue,
		Items:         items,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func saleToResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			DispatchedStock: it.DispatchedStock,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
		})
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		SellerID:       s.SellerID,
		WarehouseID:    s.WarehouseID,
		SellingChannel: s.SellingChannel,
		Status:         s.Status,
		SaleType:       s.SaleType,
		SaleDate:       s.SaleDate,
		Total:          s.Total,
		BalanceDue:     s.BalanceDue,
		Items:          items,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func paymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:              p.ID,
		TransactionID:   p.TransactionID,
		TransactionType: p.TransactionType,
		PaymentMethod:   p.PaymentMethod,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		CreatedAt:       p.CreatedAt,
	}
}
