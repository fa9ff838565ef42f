package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja por
// bodega vía fichas de stock y movimientos, nunca desde aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El código es único y la banda de precios,
// si viene, debe cumplir mínimo <= máximo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.NewValidationError("code", domain.ErrDuplicate)
	}
	if err := checkSalePriceBand(in.MinimumSalePrice, in.MaximumSalePrice); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Code:              in.Code,
		Name:              in.Name,
		UnitOfMeasurement: in.UnitOfMeasurement,
		Description:       in.Description,
		MinimumSalePrice:  in.MinimumSalePrice,
		MaximumSalePrice:  in.MaximumSalePrice,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El código no es editable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitOfMeasurement != nil {
		product.UnitOfMeasurement = *in.UnitOfMeasurement
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MinimumSalePrice != nil {
		product.MinimumSalePrice = *in.MinimumSalePrice
	}
	if in.MaximumSalePrice != nil {
		product.MaximumSalePrice = *in.MaximumSalePrice
	}
	if err := checkSalePriceBand(product.MinimumSalePrice, product.MaximumSalePrice); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

// checkSalePriceBand valida mínimo <= máximo cuando ambos están configurados.
func checkSalePriceBand(min, max decimal.Decimal) error {
	if min.IsPositive() && max.IsPositive() && min.GreaterThan(max) {
		return domain.NewValidationError("minimum_sale_price", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		UnitOfMeasurement: p.UnitOfMeasurement,
		Description:       p.Description,
		MinimumSalePrice:  p.MinimumSalePrice,
		MaximumSalePrice:  p.MaximumSalePrice,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
