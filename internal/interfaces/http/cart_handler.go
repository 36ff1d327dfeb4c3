package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	appcart "github.com/jhoicas/Tienda-api/internal/application/cart"
	appcatalog "github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
)

// CartHandler operaciones sobre el carrito de la sesión del token.
type CartHandler struct {
	uc      *appcart.UseCase
	catalog *appcatalog.UseCase
	images  dto.ImageURLFunc
	quotes  ports.QuotePDFGenerator
}

// NewCartHandler construye el handler. catalog se usa para cargar el catálogo bajo demanda
// antes de agregar un producto.
func NewCartHandler(uc *appcart.UseCase, catalog *appcatalog.UseCase, images dto.ImageURLFunc, quotes ports.QuotePDFGenerator) *CartHandler {
	return &CartHandler{uc: uc, catalog: catalog, images: images, quotes: quotes}
}

func (h *CartHandler) respond(c *fiber.Ctx, st appcart.State, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewCartResponse(st.Snapshot, st.IsOpen, h.images))
}

// View godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	st, err := h.uc.View(GetSessionID(c))
	return h.respond(c, st, err)
}

// Open godoc
// @Summary      Mostrar el panel del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/open [post]
func (h *CartHandler) Open(c *fiber.Ctx) error {
	st, err := h.uc.Open(GetSessionID(c))
	return h.respond(c, st, err)
}

// Close godoc
// @Summary      Ocultar el panel del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/close [post]
func (h *CartHandler) Close(c *fiber.Ctx) error {
	st, err := h.uc.Close(GetSessionID(c))
	return h.respond(c, st, err)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "SKU del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.SKU <= 0 {
		return badRequest(c, "VALIDATION", "sku es requerido")
	}
	if ok, err := loadCatalog(c, h.catalog); !ok {
		return err
	}
	st, err := h.uc.AddProduct(GetSessionID(c), in.SKU)
	return h.respond(c, st, err)
}

// Increase godoc
// @Summary      Aumentar cantidad
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        sku  path  int  true  "SKU"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{sku}/increase [post]
func (h *CartHandler) Increase(c *fiber.Ctx) error {
	sku, err := parseSKU(c)
	if err != nil {
		return badRequest(c, "INVALID_SKU", err.Error())
	}
	st, err := h.uc.Increase(GetSessionID(c), sku)
	return h.respond(c, st, err)
}

// Decrease godoc
// @Summary      Disminuir cantidad (en 1 elimina la línea)
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        sku  path  int  true  "SKU"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{sku}/decrease [post]
func (h *CartHandler) Decrease(c *fiber.Ctx) error {
	sku, err := parseSKU(c)
	if err != nil {
		return badRequest(c, "INVALID_SKU", err.Error())
	}
	st, err := h.uc.Decrease(GetSessionID(c), sku)
	return h.respond(c, st, err)
}

// Remove godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        sku  path  int  true  "SKU"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{sku} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sku, err := parseSKU(c)
	if err != nil {
		return badRequest(c, "INVALID_SKU", err.Error())
	}
	st, err := h.uc.Remove(GetSessionID(c), sku)
	return h.respond(c, st, err)
}

// Quote godoc
// @Summary      Cotización en PDF del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/quote.pdf [get]
func (h *CartHandler) Quote(c *fiber.Ctx) error {
	st, err := h.uc.View(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	ref := "COT-" + uuid.New().String()[:8]
	pdf, err := h.quotes.GenerateQuotePDF(c.UserContext(), ref, st.Snapshot)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, ref))
	return c.Send(pdf)
}
