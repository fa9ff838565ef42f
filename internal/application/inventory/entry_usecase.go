package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// EntryUseCase registra entradas de mercadería y reconcilia sus líneas.
// Cada línea aplica un RECEIVE sobre la ficha de stock; las líneas vinculadas
// a una compra además acreditan entered_stock en la línea de compra.
type EntryUseCase struct {
	txRunner      TxRunner
	entryRepo     repository.EntryRepository
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	purchaseRepo  repository.PurchaseRepository
}

// NewEntryUseCase crea el caso de uso de entradas.
func NewEntryUseCase(
	txRunner TxRunner,
	entryRepo repository.EntryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	purchaseRepo repository.PurchaseRepository,
) *EntryUseCase {
	return &EntryUseCase{
		txRunner:      txRunner,
		entryRepo:     entryRepo,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		purchaseRepo:  purchaseRepo,
	}
}

// Create registra una entrada con sus líneas. Todo el efecto sobre el stock
// y sobre las líneas de compra vinculadas ocurre en una sola transacción.
func (uc *EntryUseCase) Create(ctx context.Context, warehouseKeeperID string, req dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if _, err := uc.supplierRepo.GetByID(req.SupplierID); err != nil {
		return nil, domain.NewValidationError("supplier_id", err)
	}
	if _, err := uc.warehouseRepo.GetByID(req.WarehouseID); err != nil {
		return nil, domain.NewValidationError("warehouse_id", err)
	}
	if req.PurchaseID != "" {
		if _, err := uc.purchaseRepo.GetByID(req.PurchaseID); err != nil {
			return nil, domain.NewValidationError("purchase_id", err)
		}
	}
	for _, it := range req.Items {
		if _, err := uc.productRepo.GetByID(it.ProductID); err != nil {
			return nil, domain.NewValidationError("product_id", err)
		}
	}

	now := time.Now()
	entry := &entity.Entry{
		ID:                uuid.NewString(),
		WarehouseKeeperID: warehouseKeeperID,
		SupplierID:        req.SupplierID,
		WarehouseID:       req.WarehouseID,
		PurchaseID:        req.PurchaseID,
		EntryDate:         req.EntryDate,
		InvoiceNumber:     req.InvoiceNumber,
		Note:              req.Note,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, it := range req.Items {
		entry.Items = append(entry.Items, entity.EntryItem{
			ID:             uuid.NewString(),
			EntryID:        entry.ID,
			ProductID:      it.ProductID,
			PurchaseItemID: it.PurchaseItemID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
		})
	}

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Entries.Create(entry); err != nil {
			return err
		}
		for _, it := range entry.Items {
			if it.PurchaseItemID != "" {
				if err := creditPurchaseItem(r, it.PurchaseItemID, it.Quantity); err != nil {
					return err
				}
			}
			if err := applyMovements(r, it.ProductID, entry.WarehouseID, now, movementOp{kind: inventory.MovementReceive, qty: it.Quantity}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entryToResponse(entry), nil
}

// Update actualiza cabecera y/o líneas. Para las líneas aplica solo el delta
// neto contra el stock: líneas nuevas reciben, cantidades modificadas ajustan,
// y las líneas ausentes del payload se eliminan revirtiendo su RECEIVE.
// Reenviar las líneas sin cambios no mueve stock.
func (uc *EntryUseCase) Update(ctx context.Context, id string, req dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if req.EntryDate != nil {
			entry.EntryDate = *req.EntryDate
		}
		if req.InvoiceNumber != nil {
			entry.InvoiceNumber = *req.InvoiceNumber
		}
		if req.Note != nil {
			entry.Note = *req.Note
		}
		entry.UpdatedAt = now
		if err := r.Entries.Update(entry); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}

		previous := make([]PrevLine, 0, len(entry.Items))
		for _, it := range entry.Items {
			previous = append(previous, PrevLine{ID: it.ID, ProductID: it.ProductID, Ref: it.PurchaseItemID, Quantity: it.Quantity})
		}
		requested := make([]ReqLine, 0, len(req.Items))
		for _, it := range req.Items {
			requested = append(requested, ReqLine{ID: it.ID, ProductID: it.ProductID, Ref: it.PurchaseItemID, Quantity: it.Quantity})
		}
		deltas, err := DiffLines(previous, requested)
		if err != nil {
			return err
		}

		for i, d := range deltas {
			switch {
			case d.Removed:
				if d.Ref != "" {
					if err := creditPurchaseItem(r, d.Ref, -d.Prev); err != nil {
						return err
					}
				}
				if err := applyMovements(r, d.ProductID, entry.WarehouseID, now, deltaOps(inventory.MovementReceive, -d.Prev)...); err != nil {
					return err
				}
				if err := r.Entries.DeleteItem(d.ID); err != nil {
					return err
				}

			case d.ID == "":
				line := req.Items[i]
				if _, err := uc.productRepo.GetByID(line.ProductID); err != nil {
					return domain.NewValidationError("product_id", err)
				}
				item := &entity.EntryItem{
					ID:             uuid.NewString(),
					EntryID:        entry.ID,
					ProductID:      line.ProductID,
					PurchaseItemID: line.PurchaseItemID,
					Quantity:       line.Quantity,
					UnitPrice:      line.UnitPrice,
					TotalPrice:     line.TotalPrice,
				}
				if err := r.Entries.CreateItem(item); err != nil {
					return err
				}
				if item.PurchaseItemID != "" {
					if err := creditPurchaseItem(r, item.PurchaseItemID, item.Quantity); err != nil {
						return err
					}
				}
				if err := applyMovements(r, item.ProductID, entry.WarehouseID, now, movementOp{kind: inventory.MovementReceive, qty: item.Quantity}); err != nil {
					return err
				}

			default:
				line := req.Items[i]
				if d.Ref != "" && d.Delta() != 0 {
					if err := creditPurchaseItem(r, d.Ref, d.Delta()); err != nil {
						return err
					}
				}
				if err := applyMovements(r, d.ProductID, entry.WarehouseID, now, deltaOps(inventory.MovementReceive, d.Delta())...); err != nil {
					return err
				}
				item := &entity.EntryItem{
					ID:             d.ID,
					EntryID:        entry.ID,
					ProductID:      d.ProductID,
					PurchaseItemID: d.Ref,
					Quantity:       line.Quantity,
					UnitPrice:      line.UnitPrice,
					TotalPrice:     line.TotalPrice,
				}
				if err := r.Entries.UpdateItem(item); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return entryToResponse(updated), nil
}

// GetByID devuelve una entrada con sus líneas.
func (uc *EntryUseCase) GetByID(ctx context.Context, id string) (*dto.EntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return entryToResponse(entry), nil
}

// List devuelve entradas paginadas.
func (uc *EntryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EntryListResponse, error) {
	page.DefaultPage()
	entries, err := uc.entryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.EntryListResponse{
		Items: make([]dto.EntryResponse, 0, len(entries)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entries {
		resp.Items = append(resp.Items, *entryToResponse(e))
	}
	return resp, nil
}

// creditPurchaseItem ajusta entered_stock de una línea de compra bajo lock.
// El acumulado nunca baja de cero ni supera la cantidad comprada.
func creditPurchaseItem(r TxRepos, purchaseItemID string, delta int64) error {
	pi, err := r.Purchases.GetItemForUpdate(purchaseItemID)
	if err != nil {
		return err
	}
	entered := pi.EnteredStock + delta
	if entered < 0 {
		return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
	}
	if entered > pi.Quantity {
		return domain.NewValidationError("quantity", domain.ErrExceedsPurchasedQuantity)
	}
	return r.Purchases.UpdateItemEnteredStock(pi.ID, entered)
}
