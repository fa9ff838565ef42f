package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StockHandler maneja fichas de stock y movimientos directos (protegido).
type StockHandler struct {
	stockUC    *usecase.StockUseCase
	movementUC *appinv.RegisterMovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockUC *usecase.StockUseCase, movementUC *appinv.RegisterMovementUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC, movementUC: movementUC}
}

// RegisterMovement godoc
// @Summary      Aplicar un movimiento sobre la ficha de stock
// @Description  Kinds: RECEIVE, DISPATCH, MARK_DAMAGED, ADJUST_RESERVATION (cantidad con signo).
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.movementUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Configure godoc
// @Summary      Configurar umbrales mínimo/máximo de una ficha de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfigureStockRequest  true  "Umbrales"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/configure [post]
func (h *StockHandler) Configure(c *fiber.Ctx) error {
	var in dto.ConfigureStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.stockUC.Configure(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve la ficha de stock de un producto en una bodega.
func (h *StockHandler) Get(c *fiber.Ctx) error {
	out, err := h.stockUC.Get(c.Params("productId"), c.Params("warehouseId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse lista las fichas de una bodega.
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.stockUC.ListByWarehouse(c.Params("warehouseId"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListBelowMinimum reporta fichas bajo el mínimo configurado.
func (h *StockHandler) ListBelowMinimum(c *fiber.Ctx) error {
	out, err := h.stockUC.ListBelowMinimum(c.Params("warehouseId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
