package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// CheckoutHandler envío de pagos.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Submit godoc
// @Summary      Pagar el carrito
// @Description  Envía el carrito al servicio de pagos (hasta 3 intentos). Con el pago aprobado el carrito queda vacío.
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos del comprador"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "carrito vacío o pago en curso"
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	res, err := h.uc.Submit(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	if !res.OK() {
		return c.Status(fiber.StatusBadGateway).JSON(res)
	}
	return c.JSON(res)
}
