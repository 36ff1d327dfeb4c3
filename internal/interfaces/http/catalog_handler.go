package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CatalogHandler listado y filtrado del catálogo.
type CatalogHandler struct {
	uc     *appcatalog.UseCase
	images dto.ImageURLFunc
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *appcatalog.UseCase, images dto.ImageURLFunc) *CatalogHandler {
	return &CatalogHandler{uc: uc, images: images}
}

// List godoc
// @Summary      Catálogo filtrado
// @Tags         catalog
// @Produce      json
// @Param        sizes      query  string  false  "Tallas requeridas separadas por coma (ej. M,L)"
// @Param        max_price  query  number  false  "Precio máximo (inclusivo)"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return badRequest(c, "INVALID_FILTER", err.Error())
	}
	if ok, err := loadCatalog(c, h.uc); !ok {
		return err
	}
	products := h.uc.List(criteria)
	return c.JSON(dto.NewCatalogResponse(products, h.uc.Version(), h.images))
}

// Sizes godoc
// @Summary      Tallas disponibles
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.SizesResponse
// @Router       /api/catalog/sizes [get]
func (h *CatalogHandler) Sizes(c *fiber.Ctx) error {
	return c.JSON(dto.SizesResponse{Sizes: h.uc.AvailableSizes()})
}

// Refresh godoc
// @Summary      Volver a consultar el catálogo remoto
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	res := h.uc.Refresh(c.UserContext())
	if !res.OK() {
		return c.Status(fiber.StatusBadGateway).JSON(res)
	}
	return c.JSON(ports.Succeeded(dto.NewCatalogResponse(res.Data, h.uc.Version(), h.images)))
}

// loadCatalog carga el catálogo bajo demanda mientras no haya ninguno. Si el servicio
// remoto falla responde 502 con el FetchResult y devuelve false.
func loadCatalog(c *fiber.Ctx, uc *appcatalog.UseCase) (bool, error) {
	res, ok := uc.EnsureLoaded(c.UserContext())
	if ok {
		return true, nil
	}
	return false, c.Status(fiber.StatusBadGateway).JSON(res)
}

// GetBySKU godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Param        sku  path  int  true  "SKU"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/catalog/{sku} [get]
func (h *CatalogHandler) GetBySKU(c *fiber.Ctx) error {
	sku, err := parseSKU(c)
	if err != nil {
		return badRequest(c, "INVALID_SKU", err.Error())
	}
	if ok, err := loadCatalog(c, h.uc); !ok {
		return err
	}
	p, ok := h.uc.FindBySKU(sku)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.NewProductResponse(p, h.images))
}

// parseCriteria lee ?sizes=M,L&max_price=100.
func parseCriteria(c *fiber.Ctx) (entity.FilterCriteria, error) {
	var out entity.FilterCriteria
	for _, s := range strings.Split(c.Query("sizes"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out.Sizes = append(out.Sizes, s)
		}
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return out, fiber.NewError(fiber.StatusBadRequest, "max_price debe ser numérico")
		}
		if d.IsNegative() {
			return out, fiber.NewError(fiber.StatusBadRequest, "max_price no puede ser negativo")
		}
		out.MaxPrice = &d
	}
	return out, nil
}

func parseSKU(c *fiber.Ctx) (int64, error) {
	sku, err := strconv.ParseInt(c.Params("sku"), 10, 64)
	if err != nil || sku <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "sku inválido")
	}
	return sku, nil
}
