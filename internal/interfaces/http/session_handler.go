package http

import (
	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
)

// JWTSettings parámetros de firma de los tokens de sesión.
type JWTSettings struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// SessionHandler abre y cierra sesiones de carrito.
type SessionHandler struct {
	store *appcart.SessionStore
	jwt   JWTSettings
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store *appcart.SessionStore, settings JWTSettings) *SessionHandler {
	return &SessionHandler{store: store, jwt: settings}
}

// Open godoc
// @Summary      Abrir sesión de carrito
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	id := h.store.Open()
	token, exp, err := jwt.Generate(h.jwt.Secret, id, h.jwt.Issuer, h.jwt.ExpMinutes)
	if err != nil {
		_ = h.store.Close(id)
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{SessionID: id, Token: token, ExpiresAt: exp})
}

// Close godoc
// @Summary      Cerrar la sesión del token
// @Tags         sessions
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	if err := h.store.Close(GetSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
