package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Querier operaciones comunes a *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Schema tabla del catálogo. available_sizes conserva el orden de entrada.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
	sku              BIGINT PRIMARY KEY,
	id               INTEGER NOT NULL DEFAULT 0,
	title            TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	available_sizes  TEXT[] NOT NULL DEFAULT '{}',
	style            TEXT NOT NULL DEFAULT '',
	price            NUMERIC(12,2) NOT NULL,
	installments     INTEGER NOT NULL DEFAULT 0,
	currency_id      TEXT NOT NULL DEFAULT 'USD',
	currency_format  TEXT NOT NULL DEFAULT '$',
	is_free_shipping BOOLEAN NOT NULL DEFAULT FALSE,
	position         SERIAL,
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const productColumns = `id, sku, title, description, available_sizes, style, price, installments,
		currency_id, currency_format, is_free_shipping`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("crear esquema products: %w", err)
	}
	return nil
}

// ListAll devuelve el catálogo completo en orden de alta.
func (r *ProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// GetBySKU obtiene un producto; (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserta o reemplaza un producto por SKU. Conserva la posición original.
func (r *ProductRepo) Upsert(ctx context.Context, p entity.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	sizes := p.AvailableSizes
	if sizes == nil {
		sizes = []string{}
	}
	query := `
		INSERT INTO products (id, sku, title, description, available_sizes, style, price, installments,
			currency_id, currency_format, is_free_shipping, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (sku) DO UPDATE SET
			id = EXCLUDED.id, title = EXCLUDED.title, description = EXCLUDED.description,
			available_sizes = EXCLUDED.available_sizes, style = EXCLUDED.style, price = EXCLUDED.price,
			installments = EXCLUDED.installments, currency_id = EXCLUDED.currency_id,
			currency_format = EXCLUDED.currency_format, is_free_shipping = EXCLUDED.is_free_shipping,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Title, p.Description, sizes, p.Style, p.Price, p.Installments,
		p.CurrencyID, p.CurrencyFormat, p.IsFreeShipping,
	)
	if err != nil {
		return fmt.Errorf("upsert product %d: %w", p.SKU, err)
	}
	return nil
}

// Delete elimina un producto por SKU.
func (r *ProductRepo) Delete(ctx context.Context, sku int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Title, &p.Description, &p.AvailableSizes, &p.Style, &p.Price,
		&p.Installments, &p.CurrencyID, &p.CurrencyFormat, &p.IsFreeShipping,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}
