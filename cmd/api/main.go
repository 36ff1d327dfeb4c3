package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/Tienda-api/internal/application/cart"
	appcatalog "github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/assets"
	infrapdf "github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/storeapi"
	httpRouter "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store_api", cfg.StoreAPI.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		// Solo fuera de producción; config.Load lo exige en production.
		cfg.JWT.Secret = "dev-secret-no-usar-en-produccion"
		log.Warn().Msg("JWT_SECRET vacío, se usa un secreto de desarrollo")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Servicio remoto de catálogo y pagos (reintentos + FetchResult)
	store := storeapi.NewClient(storeapi.Config{
		BaseURL:    cfg.StoreAPI.BaseURL,
		MaxRetries: cfg.StoreAPI.MaxRetries,
		RetryDelay: cfg.StoreAPI.RetryDelay(),
		Timeout:    cfg.StoreAPI.Timeout(),
	}, log.Zerolog())

	catalogUC := appcatalog.NewUseCase(store, log.Zerolog())
	if res := catalogUC.Refresh(ctx); !res.OK() {
		// No es fatal: GET /api/catalog vuelve a intentarlo mientras la versión sea 0.
		log.Warn().Str("error", res.Error).Msg("catálogo inicial no disponible")
	}

	sessions := appcart.NewSessionStore(cfg.Cart.SessionTTL(), log.Zerolog())
	go sweepSessions(ctx, sessions, cfg.Cart.SweepInterval(), log)

	cartUC := appcart.NewUseCase(sessions, catalogUC, log.Zerolog())
	checkoutUC := checkout.NewUseCase(sessions, store, log.Zerolog())

	// Imágenes: archivo en STATIC_DIR o imagen de respaldo
	images := assets.WithFallback(assets.NewFileResolver(cfg.App.StaticDir), log.Zerolog())
	quotePDF := infrapdf.NewQuoteGenerator(cfg.App.Name)

	app := httpRouter.NewApp(cfg.App.Name, log.Zerolog())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Static("/static", cfg.App.StaticDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         cfg.App.Name,
			"catalog_version": catalogUC.Version(),
			"sessions":        sessions.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:      sessions,
		CartUC:        cartUC,
		CatalogUC:     catalogUC,
		CheckoutUC:    checkoutUC,
		Images:        images,
		ProductImages: assets.URLFunc(images, ports.AssetProduct),
		CartImages:    assets.URLFunc(images, ports.AssetCart),
		QuotePDF:      quotePDF,
		JWT: httpRouter.JWTSettings{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// sweepSessions elimina periódicamente las sesiones inactivas hasta que se cancele ctx.
func sweepSessions(ctx context.Context, sessions *appcart.SessionStore, every time.Duration, log *logger.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.SweepExpired(now); n > 0 {
				log.Debug().Int("removed", n).Int("active", sessions.Len()).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}
