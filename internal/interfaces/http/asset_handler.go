package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
)

// AssetResponse imagen resuelta.
type AssetResponse struct {
	SKU         int64  `json:"sku"`
	Kind        string `json:"kind"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
}

// AssetHandler resolución de imágenes de producto.
type AssetHandler struct {
	images ports.AssetResolver
}

// NewAssetHandler construye el handler. images debe estar envuelto con assets.WithFallback.
func NewAssetHandler(images ports.AssetResolver) *AssetHandler {
	return &AssetHandler{images: images}
}

// Resolve godoc
// @Summary      URL de la imagen de un producto
// @Tags         assets
// @Produce      json
// @Param        sku   path   int     true   "SKU"
// @Param        kind  query  string  false  "product | cart"
// @Success      200  {object}  AssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/assets/products/{sku} [get]
func (h *AssetHandler) Resolve(c *fiber.Ctx) error {
	sku, err := parseSKU(c)
	if err != nil {
		return badRequest(c, "INVALID_SKU", err.Error())
	}
	kind := ports.AssetKind(c.Query("kind", string(ports.AssetProduct)))
	if kind != ports.AssetProduct && kind != ports.AssetCart {
		return badRequest(c, "INVALID_KIND", "kind debe ser product o cart")
	}
	a, err := h.images.Resolve(sku, kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(AssetResponse{SKU: sku, Kind: string(kind), URL: a.URL, Placeholder: a.Placeholder})
}
