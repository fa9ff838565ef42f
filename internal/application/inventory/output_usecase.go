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

// OutputUseCase registra salidas de mercadería y reconcilia sus líneas.
// Una línea suelta aplica un DISPATCH directo; una línea vinculada a una venta
// confirmada despacha unidades ya reservadas: libera la reserva y despacha,
// de modo que el disponible no cambia y el físico baja.
type OutputUseCase struct {
	txRunner      TxRunner
	outputRepo    repository.OutputRepository
	productRepo   repository.ProductRepository
	clientRepo    repository.ClientRepository
	warehouseRepo repository.WarehouseRepository
}

// NewOutputUseCase crea el caso de uso de salidas.
func NewOutputUseCase(
	txRunner TxRunner,
	outputRepo repository.OutputRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	warehouseRepo repository.WarehouseRepository,
) *OutputUseCase {
	return &OutputUseCase{
		txRunner:      txRunner,
		outputRepo:    outputRepo,
		productRepo:   productRepo,
		clientRepo:    clientRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra una salida con sus líneas en una sola transacción.
func (uc *OutputUseCase) Create(ctx context.Context, warehouseKeeperID string, req dto.CreateOutputRequest) (*dto.OutputResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if _, err := uc.clientRepo.GetByID(req.ClientID); err != nil {
		return nil, domain.NewValidationError("client_id", err)
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
	output := &entity.Output{
		ID:                uuid.NewString(),
		WarehouseKeeperID: warehouseKeeperID,
		ClientID:          req.ClientID,
		WarehouseID:       req.WarehouseID,
		OutputDate:        req.OutputDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, it := range req.Items {
		output.Items = append(output.Items, entity.OutputItem{
			ID:         uuid.NewString(),
			OutputID:   output.ID,
			ProductID:  it.ProductID,
			SaleItemID: it.SaleItemID,
			Quantity:   it.Quantity,
		})
	}

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Outputs.Create(output); err != nil {
			return err
		}
		for _, it := range output.Items {
			if err := dispatchLine(r, output.WarehouseID, it.ProductID, it.SaleItemID, it.Quantity, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outputToResponse(output), nil
}

// Update actualiza cabecera y/o líneas aplicando solo deltas netos:
// líneas nuevas despachan, cantidades modificadas ajustan y las líneas
// ausentes del payload se eliminan devolviendo las unidades al stock
// (y a la reserva, si la línea estaba vinculada a una venta).
func (uc *OutputUseCase) Update(ctx context.Context, id string, req dto.UpdateOutputRequest) (*dto.OutputResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	output, err := uc.outputRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if req.OutputDate != nil {
			output.OutputDate = *req.OutputDate
		}
		output.UpdatedAt = now
		if err := r.Outputs.Update(output); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}

		previous := make([]PrevLine, 0, len(output.Items))
		for _, it := range output.Items {
			previous = append(previous, PrevLine{ID: it.ID, ProductID: it.ProductID, Ref: it.SaleItemID, Quantity: it.Quantity})
		}
		requested := make([]ReqLine, 0, len(req.Items))
		for _, it := range req.Items {
			requested = append(requested, ReqLine{ID: it.ID, ProductID: it.ProductID, Ref: it.SaleItemID, Quantity: it.Quantity})
		}
		deltas, err := DiffLines(previous, requested)
		if err != nil {
			return err
		}

		for _, d := range deltas {
			switch {
			case d.Removed:
				if err := dispatchLine(r, output.WarehouseID, d.ProductID, d.Ref, -d.Prev, now); err != nil {
					return err
				}
				if err := r.Outputs.DeleteItem(d.ID); err != nil {
					return err
				}

			case d.ID == "":
				if _, err := uc.productRepo.GetByID(d.ProductID); err != nil {
					return domain.NewValidationError("product_id", err)
				}
				item := &entity.OutputItem{
					ID:         uuid.NewString(),
					OutputID:   output.ID,
					ProductID:  d.ProductID,
					SaleItemID: d.Ref,
					Quantity:   d.New,
				}
				if err := r.Outputs.CreateItem(item); err != nil {
					return err
				}
				if err := dispatchLine(r, output.WarehouseID, item.ProductID, item.SaleItemID, item.Quantity, now); err != nil {
					return err
				}

			default:
				if err := dispatchLine(r, output.WarehouseID, d.ProductID, d.Ref, d.Delta(), now); err != nil {
					return err
				}
				item := &entity.OutputItem{
					ID:         d.ID,
					OutputID:   output.ID,
					ProductID:  d.ProductID,
					SaleItemID: d.Ref,
					Quantity:   d.New,
				}
				if err := r.Outputs.UpdateItem(item); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.outputRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return outputToResponse(updated), nil
}

// GetByID devuelve una salida con sus líneas.
func (uc *OutputUseCase) GetByID(ctx context.Context, id string) (*dto.OutputResponse, error) {
	output, err := uc.outputRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return outputToResponse(output), nil
}

// List devuelve salidas paginadas.
func (uc *OutputUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OutputListResponse, error) {
	page.DefaultPage()
	outputs, err := uc.outputRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.OutputListResponse{
		Items: make([]dto.OutputResponse, 0, len(outputs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range outputs {
		resp.Items = append(resp.Items, *outputToResponse(o))
	}
	return resp, nil
}

// dispatchLine aplica el delta de una línea de salida sobre el stock.
// delta > 0 despacha; delta < 0 devuelve unidades. Si la línea está vinculada
// a una venta, el despacho consume reserva y acredita dispatched_stock.
func dispatchLine(r TxRepos, warehouseID, productID, saleItemID string, delta int64, now time.Time) error {
	if delta == 0 {
		return nil
	}
	if saleItemID == "" {
		return applyMovements(r, productID, warehouseID, now, deltaOps(inventory.MovementDispatch, delta)...)
	}
	if err := debitSaleItem(r, saleItemID, delta); err != nil {
		return err
	}
	var ops []movementOp
	if delta > 0 {
		// libera la reserva y despacha: disponible intacto, físico baja
		ops = []movementOp{
			{kind: inventory.MovementAdjustReservation, qty: -delta},
			{kind: inventory.MovementDispatch, qty: delta},
		}
	} else {
		// reversa: reingresa y vuelve a reservar
		ops = []movementOp{
			{kind: inventory.MovementReceive, qty: -delta},
			{kind: inventory.MovementAdjustReservation, qty: -delta},
		}
	}
	return applyMovements(r, productID, warehouseID, now, ops...)
}

// debitSaleItem ajusta dispatched_stock de una línea de venta bajo lock.
// El acumulado nunca baja de cero ni supera la cantidad vendida.
func debitSaleItem(r TxRepos, saleItemID string, delta int64) error {
	si, err := r.Sales.GetItemForUpdate(saleItemID)
	if err != nil {
		return err
	}
	dispatched := si.DispatchedStock + delta
	if dispatched < 0 {
		return domain.NewValidationError("quantity", domain.ErrInvalidQuantity)
	}
	if dispatched > si.Quantity {
		return domain.NewValidationError("quantity", domain.ErrExceedsSoldQuantity)
	}
	return r.Sales.UpdateItemDispatchedStock(si.ID, dispatched)
}
