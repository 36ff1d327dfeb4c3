// catalog sirve el servicio remoto de la tienda (/api/products y /api/payment) sobre
// PostgreSQL, para desarrollo local y pruebas de integración de la API.
//
// Uso: go run ./cmd/catalog [-addr :8081] [-seed products.json]
// Con -seed el archivo (arreglo JSON de productos) se carga en una sola transacción antes de escuchar.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	addr := flag.String("addr", ":8081", "dirección de escucha")
	seedPath := flag.String("seed", "", "archivo JSON con productos a cargar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "tienda-catalog"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema")
	}

	if *seedPath != "" {
		products, err := readSeed(*seedPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *seedPath).Msg("leer seed")
		}
		runner := postgres.NewTxRunner(pool)
		err = runner.Run(ctx, func(repo repository.ProductRepository) error {
			return seed(ctx, repo, products)
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cargar seed")
		}
		log.Info().Int("products", len(products)).Msg("seed cargado")
	}

	app := newServer(postgres.NewProductRepository(pool), log.Component("catalog_server"))

	go func() {
		if err := app.Listen(*addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

func readSeed(path string) ([]entity.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("formato de seed: %w", err)
	}
	return products, nil
}

// seed inserta o actualiza cada producto; el primero inválido aborta la carga.
func seed(ctx context.Context, repo repository.ProductRepository, products []entity.Product) error {
	for _, p := range products {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("producto %d: %w", p.SKU, err)
		}
	}
	return nil
}
