package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// SaleUseCase registra ventas a cliente. Una venta nace en estado generated
// sin tocar el stock; confirmarla (generated -> done) reserva las unidades
// vendidas. El despacho físico ocurre después, vía salidas vinculadas.
type SaleUseCase struct {
	txRunner      appinv.TxRunner
	saleRepo      repository.SaleRepository
	productRepo   repository.ProductRepository
	clientRepo    repository.ClientRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
}

// NewSaleUseCase crea el caso de uso de ventas.
func NewSaleUseCase(
	txRunner appinv.TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:      txRunner,
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		clientRepo:    clientRepo,
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
	}
}

// Create registra una venta en estado generated. Valida que el vendedor tenga
// rol habilitado y que cada precio unitario caiga dentro de la banda de precios
// del producto cuando esta existe.
func (uc *SaleUseCase) Create(ctx context.Context, sellerID string, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.CanCreateSale() {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.clientRepo.GetByID(req.ClientID); err != nil {
		return nil, domain.NewValidationError("client_id", err)
	}
	if _, err := uc.warehouseRepo.GetByID(req.WarehouseID); err != nil {
		return nil, domain.NewValidationError("warehouse_id", err)
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.NewString(),
		ClientID:       req.ClientID,
		SellerID:       sellerID,
		WarehouseID:    req.WarehouseID,
		SellingChannel: req.SellingChannel,
		Status:         entity.SaleStatusGenerated,
		SaleType:       req.SaleType,
		SaleDate:       req.SaleDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	total := decimal.Zero
	for _, it := range req.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, domain.NewValidationError("product_id", err)
		}
		if err := checkPriceBand(product, it.UnitPrice); err != nil {
			return nil, err
		}
		lineTotal := it.TotalPrice
		if lineTotal.IsZero() {
			lineTotal = it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		}
		total = total.Add(lineTotal)
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:         uuid.NewString(),
			SaleID:     sale.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: lineTotal,
		})
	}
	sale.Total = total
	sale.BalanceDue = total

	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

// Confirm transiciona la venta generated -> done reservando las unidades de
// todas sus líneas en una sola transacción. Una venta ya confirmada o cerrada
// no puede confirmarse de nuevo.
func (uc *SaleUseCase) Confirm(ctx context.Context, id string) (*dto.SaleResponse, error) {
	var confirmed *entity.Sale
	err := uc.txRunner.Run(ctx, func(r appinv.TxRepos) error {
		sale, err := r.Sales.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale.Status != entity.SaleStatusGenerated {
			return domain.NewValidationError("status", domain.ErrConflict)
		}
		now := time.Now()
		for _, it := range sale.Items {
			if err := appinv.ReserveDelta(r, it.ProductID, sale.WarehouseID, it.Quantity, now); err != nil {
				return err
			}
		}
		if err := r.Sales.UpdateStatus(sale.ID, entity.SaleStatusDone); err != nil {
			return err
		}
		sale.Status = entity.SaleStatusDone
		confirmed = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saleToResponse(confirmed), nil
}

// Update actualiza cabecera y/o líneas. Para actualizar líneas el payload debe
// declarar el estado que el caller observó; si no coincide con el estado actual
// la actualización se rechaza. Sobre una venta confirmada los deltas de línea
// se aplican como ajustes de reserva; sobre una generada solo cambian líneas.
// Una venta cerrada (finished) no admite cambios de líneas, y una línea nunca
// queda por debajo de lo ya despachado.
func (uc *SaleUseCase) Update(ctx context.Context, id string, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(r appinv.TxRepos) error {
		sale, err := r.Sales.GetForUpdate(id)
		if err != nil {
			return err
		}
		if req.SaleDate != nil {
			sale.SaleDate = *req.SaleDate
		}
		sale.UpdatedAt = now
		if err := r.Sales.Update(sale); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}
		if req.Status == nil {
			return domain.NewValidationError("status", domain.ErrInvalidInput)
		}
		if *req.Status != sale.Status {
			return domain.NewValidationError("status", domain.ErrConflict)
		}
		if sale.Status == entity.SaleStatusFinished {
			return domain.NewValidationError("status", domain.ErrConflict)
		}
		reserved := sale.Status == entity.SaleStatusDone

		dispatchedByItem := make(map[string]int64, len(sale.Items))
		for _, it := range sale.Items {
			dispatchedByItem[it.ID] = it.DispatchedStock
		}

		previous := make([]appinv.PrevLine, 0, len(sale.Items))
		for _, it := range sale.Items {
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
				if dispatchedByItem[d.ID] > 0 {
					return domain.NewValidationError("id", domain.ErrConflict)
				}
				if reserved {
					if err := appinv.ReserveDelta(r, d.ProductID, sale.WarehouseID, -d.Prev, now); err != nil {
						return err
					}
				}
				if err := r.Sales.DeleteItem(d.ID); err != nil {
					return err
				}

			case d.ID == "":
				line := req.Items[i]
				product, err := uc.productRepo.GetByID(line.ProductID)
				if err != nil {
					return domain.NewValidationError("product_id", err)
				}
				if err := checkPriceBand(product, line.UnitPrice); err != nil {
					return err
				}
				lineTotal := line.TotalPrice
				if lineTotal.IsZero() {
					lineTotal = line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
				}
				item := &entity.SaleItem{
					ID:         uuid.NewString(),
					SaleID:     sale.ID,
					ProductID:  line.ProductID,
					Quantity:   line.Quantity,
					UnitPrice:  line.UnitPrice,
					TotalPrice: lineTotal,
				}
				if err := r.Sales.CreateItem(item); err != nil {
					return err
				}
				if reserved {
					if err := appinv.ReserveDelta(r, item.ProductID, sale.WarehouseID, item.Quantity, now); err != nil {
						return err
					}
				}

			default:
				line := req.Items[i]
				if d.New < dispatchedByItem[d.ID] {
					return domain.NewValidationError("quantity", domain.ErrExceedsSoldQuantity)
				}
				if reserved {
					if err := appinv.ReserveDelta(r, d.ProductID, sale.WarehouseID, d.Delta(), now); err != nil {
						return err
					}
				}
				lineTotal := line.TotalPrice
				if lineTotal.IsZero() {
					lineTotal = line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
				}
				item := &entity.SaleItem{
					ID:              d.ID,
					SaleID:          sale.ID,
					ProductID:       d.ProductID,
					Quantity:        line.Quantity,
					DispatchedStock: dispatchedByItem[d.ID],
					UnitPrice:       line.UnitPrice,
					TotalPrice:      lineTotal,
				}
				if err := r.Sales.UpdateItem(item); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return saleToResponse(updated), nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

// List devuelve ventas paginadas, opcionalmente filtradas por estado.
func (uc *SaleUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range sales {
		resp.Items = append(resp.Items, *saleToResponse(s))
	}
	return resp, nil
}

// checkPriceBand valida que el precio unitario caiga dentro de la banda
// [MinimumSalePrice, MaximumSalePrice] del producto cuando está configurada.
func checkPriceBand(product *entity.Product, unitPrice decimal.Decimal) error {
	if product.MinimumSalePrice.IsPositive() && unitPrice.LessThan(product.MinimumSalePrice) {
		return domain.NewValidationError("unit_price", domain.ErrInvalidInput)
	}
	if product.MaximumSalePrice.IsPositive() && unitPrice.GreaterThan(product.MaximumSalePrice) {
		return domain.NewValidationError("unit_price", domain.ErrInvalidInput)
	}
	return nil
}
