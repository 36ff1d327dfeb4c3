// Package cart implementa el motor de estado del carrito.
//
// Cada operación es una función pura (snapshot anterior, entrada) -> snapshot nuevo.
// El snapshot recibido nunca se modifica: quien conserve una referencia a un estado
// anterior sigue viendo exactamente ese estado.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// AddProduct agrega una unidad del producto. Si ya existe una línea con el mismo SKU
// incrementa su cantidad; si no, agrega una línea nueva con cantidad 1 al final.
// Un producto inválido devuelve el snapshot sin cambios y domain.ErrInvalidProduct.
func AddProduct(s entity.CartSnapshot, product entity.Product) (entity.CartSnapshot, error) {
	if err := product.Validate(); err != nil {
		return s, err
	}
	items := s.Items()
	for i := range items {
		if items[i].SKU == product.SKU {
			items[i].Quantity++
			return entity.NewCartSnapshot(items), nil
		}
	}
	items = append(items, entity.CartLineItem{Product: product, Quantity: 1})
	return entity.NewCartSnapshot(items), nil
}

// IncreaseQuantity suma 1 a la línea del SKU. Sin línea es un no-op.
func IncreaseQuantity(s entity.CartSnapshot, sku int64) entity.CartSnapshot {
	if !s.Contains(sku) {
		return s
	}
	items := s.Items()
	for i := range items {
		if items[i].SKU == sku {
			items[i].Quantity++
		}
	}
	return entity.NewCartSnapshot(items)
}

// DecreaseQuantity resta 1 a la línea del SKU. Una línea con cantidad 1 se elimina
// en lugar de quedar en 0. Sin línea es un no-op.
func DecreaseQuantity(s entity.CartSnapshot, sku int64) entity.CartSnapshot {
	if !s.Contains(sku) {
		return s
	}
	items := s.Items()
	out := items[:0]
	for _, it := range items {
		if it.SKU == sku {
			if it.Quantity <= 1 {
				continue
			}
			it.Quantity--
		}
		out = append(out, it)
	}
	return entity.NewCartSnapshot(out)
}

// RemoveProduct excluye la línea del SKU. Sin línea es un no-op.
func RemoveProduct(s entity.CartSnapshot, sku int64) entity.CartSnapshot {
	if !s.Contains(sku) {
		return s
	}
	items := s.Items()
	out := items[:0]
	for _, it := range items {
		if it.SKU != sku {
			out = append(out, it)
		}
	}
	return entity.NewCartSnapshot(out)
}

// TotalPrice suma precio * cantidad de todas las líneas.
func TotalPrice(s entity.CartSnapshot) decimal.Decimal {
	return s.TotalPrice()
}

// TotalQuantity suma las cantidades de todas las líneas.
func TotalQuantity(s entity.CartSnapshot) int {
	return s.TotalQuantity()
}

// Operation es una mutación del carrito lista para despacharse sobre el último snapshot.
type Operation func(entity.CartSnapshot) (entity.CartSnapshot, error)

// Add envuelve AddProduct como Operation.
func Add(product entity.Product) Operation {
	return func(s entity.CartSnapshot) (entity.CartSnapshot, error) {
		return AddProduct(s, product)
	}
}

// Increase envuelve IncreaseQuantity como Operation.
func Increase(sku int64) Operation {
	return func(s entity.CartSnapshot) (entity.CartSnapshot, error) {
		return IncreaseQuantity(s, sku), nil
	}
}

// Decrease envuelve DecreaseQuantity como Operation.
func Decrease(sku int64) Operation {
	return func(s entity.CartSnapshot) (entity.CartSnapshot, error) {
		return DecreaseQuantity(s, sku), nil
	}
}

// Remove envuelve RemoveProduct como Operation.
func Remove(sku int64) Operation {
	return func(s entity.CartSnapshot) (entity.CartSnapshot, error) {
		return RemoveProduct(s, sku), nil
	}
}
