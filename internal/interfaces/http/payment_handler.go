package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/sales"
)

// PaymentHandler maneja pagos contra compras y ventas (protegido).
type PaymentHandler struct {
	uc *sales.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *sales.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// paymentCreatedResponse pago registrado junto al saldo resultante.
type paymentCreatedResponse struct {
	Payment *dto.PaymentResponse `json:"payment"`
	Balance *dto.BalanceResponse `json:"balance"`
}

// Create godoc
// @Summary      Aplicar pago contra una compra o venta
// @Description  Descuenta el saldo pendiente; si llega a cero la transacción pasa a finished.
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Pago"
// @Success      201   {object}  paymentCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	payment, balance, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(paymentCreatedResponse{Payment: payment, Balance: balance})
}

// Update corrige método o fecha de un pago (no re-aplica contra el saldo).
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByTransaction lista los pagos de una compra o venta.
func (h *PaymentHandler) ListByTransaction(c *fiber.Ctx) error {
	out, err := h.uc.ListByTransaction(c.UserContext(), c.Params("transactionId"), c.Query("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List lista pagos paginados.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
