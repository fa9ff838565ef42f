package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// AgencyHandler maneja las peticiones HTTP para Agency (protegido).
type AgencyHandler struct {
	uc *usecase.AgencyUseCase
}

// NewAgencyHandler construye el handler.
func NewAgencyHandler(uc *usecase.AgencyUseCase) *AgencyHandler {
	return &AgencyHandler{uc: uc}
}

// Create crea una agencia.
func (h *AgencyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgencyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una agencia por ID.
func (h *AgencyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una agencia.
func (h *AgencyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgencyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List lista agencias paginadas.
func (h *AgencyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
