// Package catalog mantiene el snapshot vigente del catálogo remoto y sirve las vistas
// filtradas que consume la capa HTTP.
package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	domcatalog "github.com/jhoicas/Tienda-api/internal/domain/catalog"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// UseCase guarda el catálogo (reemplazado completo en cada Refresh) y memoriza el último
// filtrado por (versión, criterios normalizados).
type UseCase struct {
	fetcher ports.CatalogFetcher
	log     zerolog.Logger

	mu       sync.RWMutex
	products []entity.Product
	bySKU    map[int64]int
	version  uint64
	loadedAt time.Time

	memoMu sync.Mutex
	memo   memoEntry
}

type memoEntry struct {
	valid   bool
	version uint64
	key     string
	result  []entity.Product
}

// NewUseCase construye el caso de uso con el catálogo vacío (versión 0).
func NewUseCase(fetcher ports.CatalogFetcher, log zerolog.Logger) *UseCase {
	return &UseCase{
		fetcher: fetcher,
		log:     log.With().Str("component", "catalog").Logger(),
		bySKU:   map[int64]int{},
	}
}

// Refresh pide el catálogo al servicio remoto. Si falla se conserva el snapshot anterior.
func (uc *UseCase) Refresh(ctx context.Context) ports.FetchResult[[]entity.Product] {
	res := uc.fetcher.FetchProducts(ctx)
	if res.OK() && res.Data == nil {
		// Un éxito sin lista no puede reemplazar el catálogo vigente.
		res = ports.Failed[[]entity.Product](ports.FetchProductsFallback)
	}
	if !res.OK() {
		uc.log.Warn().Str("error", res.Error).Msg("no se pudo refrescar el catálogo, se conserva el anterior")
		return res
	}
	uc.Replace(res.Data)
	return res
}

// EnsureLoaded carga el catálogo si todavía no hay ninguno (versión 0).
// ok es false cuando la carga falló; res trae entonces el error del servicio remoto.
func (uc *UseCase) EnsureLoaded(ctx context.Context) (res ports.FetchResult[[]entity.Product], ok bool) {
	if uc.Version() > 0 {
		return res, true
	}
	res = uc.Refresh(ctx)
	return res, res.OK()
}

// Replace instala un catálogo nuevo y aumenta la versión.
func (uc *UseCase) Replace(products []entity.Product) {
	next := make([]entity.Product, len(products))
	copy(next, products)
	index := make(map[int64]int, len(next))
	invalid := 0
	for i, p := range next {
		if p.Validate() != nil {
			invalid++
		}
		if _, dup := index[p.SKU]; !dup && p.SKU != 0 {
			index[p.SKU] = i
		}
	}

	uc.mu.Lock()
	uc.products = next
	uc.bySKU = index
	uc.version++
	uc.loadedAt = time.Now()
	v := uc.version
	uc.mu.Unlock()

	ev := uc.log.Info().Int("products", len(next)).Uint64("version", v)
	if invalid > 0 {
		ev = ev.Int("invalid", invalid)
	}
	ev.Msg("catálogo actualizado")
}

// List devuelve los productos que cumplen los criterios, en el orden del catálogo.
// El resultado se recalcula solo cuando cambia el catálogo o los criterios.
func (uc *UseCase) List(criteria entity.FilterCriteria) []entity.Product {
	uc.mu.RLock()
	products, version := uc.products, uc.version
	uc.mu.RUnlock()

	key := criteriaKey(criteria)

	uc.memoMu.Lock()
	defer uc.memoMu.Unlock()
	if !uc.memo.valid || uc.memo.version != version || uc.memo.key != key {
		uc.memo = memoEntry{
			valid:   true,
			version: version,
			key:     key,
			result:  domcatalog.Filter(products, criteria),
		}
	}
	out := make([]entity.Product, len(uc.memo.result))
	copy(out, uc.memo.result)
	return out
}

// FindBySKU busca un producto del catálogo vigente.
func (uc *UseCase) FindBySKU(sku int64) (entity.Product, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	i, ok := uc.bySKU[sku]
	if !ok {
		return entity.Product{}, false
	}
	return uc.products[i], true
}

// AvailableSizes tallas presentes en el catálogo, ordenadas y sin duplicados.
func (uc *UseCase) AvailableSizes() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return domcatalog.Sizes(uc.products)
}

// Version número de reemplazos del catálogo; 0 mientras no se haya cargado.
func (uc *UseCase) Version() uint64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.version
}

// LoadedAt momento de la última carga exitosa.
func (uc *UseCase) LoadedAt() time.Time {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loadedAt
}

// criteriaKey forma canónica de los criterios: el orden y los duplicados de tallas no importan.
func criteriaKey(c entity.FilterCriteria) string {
	sizes := make([]string, 0, len(c.Sizes))
	seen := make(map[string]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if !seen[s] {
			seen[s] = true
			sizes = append(sizes, s)
		}
	}
	sort.Strings(sizes)

	var b strings.Builder
	b.WriteString(strings.Join(sizes, ","))
	b.WriteByte('|')
	if c.MaxPrice != nil {
		b.WriteString(c.MaxPrice.String())
	}
	return b.String()
}
