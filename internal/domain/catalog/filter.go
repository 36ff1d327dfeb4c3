package catalog

import (
	"sort"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Filter devuelve los productos que tienen todas las tallas pedidas y cuyo precio no
// supera MaxPrice. Conserva el orden de entrada y siempre devuelve un slice nuevo.
func Filter(products []entity.Product, criteria entity.FilterCriteria) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, criteria) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evalúa un producto contra los criterios.
func Matches(p entity.Product, criteria entity.FilterCriteria) bool {
	for _, size := range criteria.Sizes {
		if !p.HasSize(size) {
			return false
		}
	}
	if criteria.MaxPrice != nil && p.Price.GreaterThan(*criteria.MaxPrice) {
		return false
	}
	return true
}

// Sizes devuelve las tallas distintas del catálogo, ordenadas.
func Sizes(products []entity.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		for _, s := range p.AvailableSizes {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
