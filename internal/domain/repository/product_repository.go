package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo que sirve cmd/catalog.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
	GetBySKU(ctx context.Context, sku int64) (*entity.Product, error)
	Upsert(ctx context.Context, product entity.Product) error
	Delete(ctx context.Context, sku int64) error
}
