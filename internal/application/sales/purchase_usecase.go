package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PurchaseUseCase registra compras a proveedor. Crear una compra ingresa el
// stock de todas sus líneas (RECEIVE) y abre el saldo pendiente por el total.
// El total y el saldo quedan fijos al crearla; solo los pagos mueven el saldo.
type PurchaseUseCase struct {
	txRunner      appinv.TxRunner
	purchaseRepo  repository.PurchaseRepository
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
}

// NewPurchaseUseCase crea el caso de uso de compras.
func NewPurchaseUseCase(
	txRunner appinv.TxRunner,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:      txRunner,
		purchaseRepo:  purchaseRepo,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra una compra con sus líneas y aplica el ingreso de stock
// en una sola transacción. La compra nace en estado done con BalanceDue = Total.
func (uc *PurchaseUseCase) Create(ctx context.Context, buyerID string, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if _, err := uc.supplierRepo.GetByID(req.SupplierID); err != nil {
		return nil, domain.NewValidationError("supplier_id", err)
	}
	if _, err := uc.warehouseRepo.GetByID(req.WarehouseID); err != nil {
		return nil, domain.NewValidationError("warehouse_id", err)
	}
	for _, it := range req.Items {
		if _, err := uc.productRepo.GetByID(it.ProductID); err != nil {
			return nil, domain.NewValidationError("product_id", err)
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.NewString(),
		BuyerID:       buyerID,
		SupplierID:    req.SupplierID,
		WarehouseID:   req.WarehouseID,
		PurchaseType:  req.PurchaseType,
		Status:        entity.PurchaseStatusDone,
		PurchaseDate:  req.PurchaseDate,
		InvoiceNumber: req.InvoiceNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	total := decimal.Zero
	for _, it := range req.Items {
		lineTotal := it.TotalPrice
		if lineTotal.IsZero() {
			lineTotal = it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		}
		total = total.Add(lineTotal)
		purchase.Items = append(purchase.Items, entity.PurchaseItem{
			ID:         uuid.NewString(),
			PurchaseID: purchase.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: lineTotal,
		})
	}
	purchase.Total = total
	purchase.BalanceDue = total

	err := uc.txRunner.Run(ctx, func(r appinv.TxRepos) error {
		if err := r.Purchases.Create(purchase); err != nil {
			return err
		}
		for _, it := range purchase.Items {
			if err := appinv.ReceiveDelta(r, it.ProductID, purchase.WarehouseID, it.Quantity, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

// Update actualiza cabecera y/o líneas de una compra aplicando solo deltas
// netos de stock. No toca Total ni BalanceDue: la deuda quedó fija al crear.
// Una línea no puede quedar por debajo de lo ya recibido vía entradas, y una
// línea con recepciones no puede eliminarse.
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, req dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	enteredByItem := make(map[string]int64, len(purchase.Items))
	for _, it := range purchase.Items {
		enteredByItem[it.ID] = it.EnteredStock
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(r appinv.TxRepos) error {
		if req.PurchaseDate != nil {
			purchase.PurchaseDate = *req.PurchaseDate
		}
		if req.InvoiceNumber != nil {
			purchase.InvoiceNumber = *req.InvoiceNumber
		}
		purchase.UpdatedAt = now
		if err := r.Purchases.Update(purchase); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}

		previous := make([]appinv.PrevLine, 0, len(purchase.Items))
		for _, it := range purchase.Items {
			previous = append(previous, appinv.PrevLine{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity})
		}
		requested := make([]appinv.ReqLine, 0, len(req.Items))
		for _, it := range req.Items {
			requested = append(requested, appinv.ReqLine{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity})
		}
		deltas, err := appinv.DiffLines(previous, requested)
		if err != nil {
			return err
		}

		for i, d := range deltas {
			switch {
			case d.Removed:
				if enteredByItem[d.ID] > 0 {
					return domain.NewValidationError("id", domain.ErrConflict)
				}
				if err := appinv.ReceiveDelta(r, d.ProductID, purchase.WarehouseID, -d.Prev, now); err != nil {
					return err
				}
				if err := r.Purchases.DeleteItem(d.ID); err != nil {
					return err
				}

			case d.ID == "":
				line := req.Items[i]
				if _, err := uc.productRepo.GetByID(line.ProductID); err != nil {
					return domain.NewValidationError("product_id", err)
				}
				lineTotal := line.TotalPrice
				if lineTotal.IsZero() {
					lineTotal = line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
				}
				item := &entity.PurchaseItem{
					ID:         uuid.NewString(),
					PurchaseID: purchase.ID,
					ProductID:  line.ProductID,
					Quantity:   line.Quantity,
					UnitPrice:  line.UnitPrice,
					TotalPrice: lineTotal,
				}
				if err := r.Purchases.CreateItem(item); err != nil {
					return err
				}
				if err := appinv.ReceiveDelta(r, item.ProductID, purchase.WarehouseID, item.Quantity, now); err != nil {
					return err
				}

			default:
				line := req.Items[i]
				if d.New < enteredByItem[d.ID] {
					return domain.NewValidationError("quantity", domain.ErrExceedsPurchasedQuantity)
				}
				if err := appinv.ReceiveDelta(r, d.ProductID, purchase.WarehouseID, d.Delta(), now); err != nil {
					return err
				}
				lineTotal := line.TotalPrice
				if lineTotal.IsZero() {
					lineTotal = line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
				}
				item := &entity.PurchaseItem{
					ID:           d.ID,
					PurchaseID:   purchase.ID,
					ProductID:    d.ProductID,
					Quantity:     line.Quantity,
					EnteredStock: enteredByItem[d.ID],
					UnitPrice:    line.UnitPrice,
					TotalPrice:   lineTotal,
				}
				if err := r.Purchases.UpdateItem(item); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(updated), nil
}

// GetByID devuelve una compra con sus líneas.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

// List devuelve compras paginadas, opcionalmente filtradas por estado.
func (uc *PurchaseUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(purchases)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range purchases {
		resp.Items = append(resp.Items, *purchaseToResponse(p))
	}
	return resp, nil
}
