package http

import (
	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/Tienda-api/internal/application/cart"
	appcatalog "github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions      *appcart.SessionStore
	CartUC        *appcart.UseCase
	CatalogUC     *appcatalog.UseCase
	CheckoutUC    *checkout.UseCase
	Images        ports.AssetResolver
	ProductImages dto.ImageURLFunc
	CartImages    dto.ImageURLFunc
	QuotePDF      ports.QuotePDFGenerator
	JWT           JWTSettings
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesiones (apertura pública)
	sessionHandler := NewSessionHandler(deps.Sessions, deps.JWT)
	api.Post("/sessions", sessionHandler.Open)
	api.Delete("/sessions", SessionMiddleware(deps.JWT.Secret), sessionHandler.Close)

	// Catálogo (público)
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ProductImages)
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/sizes", catalogHandler.Sizes)
	catalog.Post("/refresh", catalogHandler.Refresh)
	catalog.Get("/:sku", catalogHandler.GetBySKU)

	// Imágenes (público)
	assetHandler := NewAssetHandler(deps.Images)
	api.Get("/assets/products/:sku", assetHandler.Resolve)

	// Carrito y pago (requieren token de sesión)
	cart := api.Group("/cart", SessionMiddleware(deps.JWT.Secret))
	cartHandler := NewCartHandler(deps.CartUC, deps.CatalogUC, deps.CartImages, deps.QuotePDF)
	cart.Get("/", cartHandler.View)
	cart.Post("/open", cartHandler.Open)
	cart.Post("/close", cartHandler.Close)
	cart.Get("/quote.pdf", cartHandler.Quote)
	cart.Post("/items", cartHandler.AddItem)
	cart.Post("/items/:sku/increase", cartHandler.Increase)
	cart.Post("/items/:sku/decrease", cartHandler.Decrease)
	cart.Delete("/items/:sku", cartHandler.Remove)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", SessionMiddleware(deps.JWT.Secret), checkoutHandler.Submit)
}
