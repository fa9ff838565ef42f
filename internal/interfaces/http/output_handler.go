package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
)

// OutputHandler maneja salidas de mercadería (protegido).
type OutputHandler struct {
	uc *appinv.OutputUseCase
}

// NewOutputHandler construye el handler.
func NewOutputHandler(uc *appinv.OutputUseCase) *OutputHandler {
	return &OutputHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de mercadería
// @Description  Las líneas con sale_item_id despachan unidades reservadas de esa venta.
// @Tags         outputs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutputRequest  true  "Salida con líneas"
// @Success      201   {object}  dto.OutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/outputs [post]
func (h *OutputHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza cabecera y/o líneas de una salida.
func (h *OutputHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una salida con sus líneas.
func (h *OutputHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List lista salidas paginadas.
func (h *OutputHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
