package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase aplica movimientos directos sobre la ficha de stock
// de un producto en una bodega (recepciones sueltas, daños, ajustes de reserva).
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase crea el caso de uso de movimientos.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Execute valida referencias, bloquea la ficha y aplica el movimiento.
// Devuelve la ficha resultante.
func (uc *RegisterMovementUseCase) Execute(ctx context.Context, req dto.RegisterMovementRequest) (*dto.StockResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	kind := inventory.MovementKind(req.Kind)
	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", domain.ErrInvalidInput)
	}
	if _, err := uc.productRepo.GetByID(req.ProductID); err != nil {
		return nil, domain.NewValidationError("product_id", err)
	}
	if _, err := uc.warehouseRepo.GetByID(req.WarehouseID); err != nil {
		return nil, domain.NewValidationError("warehouse_id", err)
	}

	var resp *dto.StockResponse
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		stock, err := r.Stock.GetForUpdate(req.ProductID, req.WarehouseID)
		if err != nil {
			return err
		}
		if err := inventory.Apply(stock, kind, req.Quantity); err != nil {
			return err
		}
		stock.UpdatedAt = time.Now()
		if err := r.Stock.Upsert(stock); err != nil {
			return err
		}
		resp = stockToResponse(stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
