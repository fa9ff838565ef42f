package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockUseCase consulta y configura fichas de stock. Los movimientos de
// cantidades pasan por el caso de uso de movimientos; aquí solo se leen
// fichas y se configuran umbrales mínimo/máximo.
type StockUseCase struct {
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *StockUseCase {
	return &StockUseCase{
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Configure crea o reconfigura la ficha de stock de un producto en una bodega.
// Las cantidades existentes se conservan; solo cambian los umbrales.
func (uc *StockUseCase) Configure(in dto.ConfigureStockRequest) (*dto.StockResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.MinimumStock > 0 && in.MaximumStock > 0 && in.MinimumStock > in.MaximumStock {
		return nil, domain.NewValidationError("minimum_stock", domain.ErrInvalidInput)
	}
	if _, err := uc.productRepo.GetByID(in.ProductID); err != nil {
		return nil, domain.NewValidationError("product_id", err)
	}
	if _, err := uc.warehouseRepo.GetByID(in.WarehouseID); err != nil {
		return nil, domain.NewValidationError("warehouse_id", err)
	}
	stock, err := uc.stockRepo.Get(in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	stock.MinimumStock = in.MinimumStock
	stock.MaximumStock = in.MaximumStock
	stock.UpdatedAt = time.Now()
	if err := uc.stockRepo.Upsert(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// Get devuelve la ficha de stock de un producto en una bodega.
// Sin ficha previa devuelve una en cero, lista para recibir movimientos.
func (uc *StockUseCase) Get(productID, warehouseID string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// ListByWarehouse devuelve las fichas de stock de una bodega, paginadas.
func (uc *StockUseCase) ListByWarehouse(warehouseID string, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockListResponse{
		Items: make([]dto.StockResponse, 0, len(stocks)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range stocks {
		resp.Items = append(resp.Items, *toStockResponse(s))
	}
	return resp, nil
}

// ListBelowMinimum reporta las fichas de una bodega cuyo stock está por
// debajo del mínimo configurado (reposición pendiente).
func (uc *StockUseCase) ListBelowMinimum(warehouseID string) (*dto.StockListResponse, error) {
	stocks, err := uc.stockRepo.ListBelowMinimum(warehouseID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockListResponse{Items: make([]dto.StockResponse, 0, len(stocks))}
	for _, s := range stocks {
		resp.Items = append(resp.Items, *toStockResponse(s))
	}
	return resp, nil
}

func toStockResponse(s *entity.ProductStock) *dto.StockResponse {
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
