package catalog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// stubFetcher devuelve en orden los resultados configurados.
type stubFetcher struct {
	results []ports.FetchResult[[]entity.Product]
	calls   int
}

func (s *stubFetcher) FetchProducts(context.Context) ports.FetchResult[[]entity.Product] {
	r := s.results[s.calls]
	s.calls++
	return r
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{SKU: 10, Title: "A", Price: decimal.NewFromInt(10), AvailableSizes: []string{"M", "L"}},
		{SKU: 20, Title: "B", Price: decimal.NewFromInt(30), AvailableSizes: []string{"S", "M"}},
		{SKU: 30, Title: "C", Price: decimal.NewFromInt(50), AvailableSizes: []string{"XL"}},
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRefresh_ExitoInstalaCatalogo(t *testing.T) {
	f := &stubFetcher{results: []ports.FetchResult[[]entity.Product]{ports.Succeeded(sampleProducts())}}
	uc := NewUseCase(f, zerolog.Nop())
	assert.Equal(t, uint64(0), uc.Version())

	res := uc.Refresh(context.Background())
	require.True(t, res.OK())
	assert.Equal(t, uint64(1), uc.Version())
	assert.False(t, uc.LoadedAt().IsZero())

	p, ok := uc.FindBySKU(20)
	require.True(t, ok)
	assert.Equal(t, "B", p.Title)
	_, ok = uc.FindBySKU(99)
	assert.False(t, ok)
}

func TestRefresh_FalloConservaElAnterior(t *testing.T) {
	f := &stubFetcher{results: []ports.FetchResult[[]entity.Product]{
		ports.Succeeded(sampleProducts()),
		ports.Failed[[]entity.Product]("HTTP error! Status: 500"),
	}}
	uc := NewUseCase(f, zerolog.Nop())
	uc.Refresh(context.Background())

	res := uc.Refresh(context.Background())
	assert.False(t, res.OK())
	assert.Equal(t, "HTTP error! Status: 500", res.Error)
	assert.Equal(t, uint64(1), uc.Version())
	assert.Len(t, uc.List(entity.FilterCriteria{}), 3)
}

func TestRefresh_ExitoSinLista_ConservaElAnterior(t *testing.T) {
	f := &stubFetcher{results: []ports.FetchResult[[]entity.Product]{
		ports.Succeeded(sampleProducts()),
		ports.Succeeded[[]entity.Product](nil),
	}}
	uc := NewUseCase(f, zerolog.Nop())
	uc.Refresh(context.Background())

	res := uc.Refresh(context.Background())
	assert.False(t, res.OK())
	assert.Nil(t, res.Data)
	assert.Equal(t, ports.FetchProductsFallback, res.Error)
	assert.Equal(t, uint64(1), uc.Version())
	assert.Len(t, uc.List(entity.FilterCriteria{}), 3)
}

func TestRefresh_ListaVaciaEsValida(t *testing.T) {
	f := &stubFetcher{results: []ports.FetchResult[[]entity.Product]{ports.Succeeded([]entity.Product{})}}
	uc := NewUseCase(f, zerolog.Nop())

	res := uc.Refresh(context.Background())
	assert.True(t, res.OK())
	assert.Equal(t, uint64(1), uc.Version())
	assert.Empty(t, uc.List(entity.FilterCriteria{}))
}

func TestEnsureLoaded(t *testing.T) {
	f := &stubFetcher{results: []ports.FetchResult[[]entity.Product]{
		ports.Failed[[]entity.Product]("HTTP error! Status: 503"),
		ports.Succeeded(sampleProducts()),
	}}
	uc := NewUseCase(f, zerolog.Nop())

	res, ok := uc.EnsureLoaded(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "HTTP error! Status: 503", res.Error)

	_, ok = uc.EnsureLoaded(context.Background())
	assert.True(t, ok)
	assert.Equal(t, uint64(1), uc.Version())

	// Ya cargado: no vuelve al servicio remoto.
	_, ok = uc.EnsureLoaded(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 2, f.calls)
}

func TestList_FiltraYMemoriza(t *testing.T) {
	uc := NewUseCase(nil, zerolog.Nop())
	uc.Replace(sampleProducts())

	out := uc.List(entity.FilterCriteria{Sizes: []string{"M"}, MaxPrice: dec("30")})
	require.Len(t, out, 2)
	assert.Equal(t, int64(10), out[0].SKU)
	assert.Equal(t, int64(20), out[1].SKU)
	firstKey := uc.memo.key

	// Mismos criterios con otro orden y duplicados: misma clave, sin recálculo.
	_ = uc.List(entity.FilterCriteria{Sizes: []string{"M", "M"}, MaxPrice: dec("30.00")})
	assert.Equal(t, firstKey, uc.memo.key)

	// Nuevo catálogo invalida la memoria.
	uc.Replace(sampleProducts()[:1])
	out = uc.List(entity.FilterCriteria{Sizes: []string{"M"}, MaxPrice: dec("30")})
	assert.Len(t, out, 1)
	assert.Equal(t, uint64(2), uc.memo.version)
}

func TestList_ResultadoEsCopia(t *testing.T) {
	uc := NewUseCase(nil, zerolog.Nop())
	uc.Replace(sampleProducts())

	out := uc.List(entity.FilterCriteria{})
	out[0].Title = "mutado"
	again := uc.List(entity.FilterCriteria{})
	assert.Equal(t, "A", again[0].Title)
}

func TestReplace_SKUDuplicado_PrevaleceElPrimero(t *testing.T) {
	uc := NewUseCase(nil, zerolog.Nop())
	uc.Replace([]entity.Product{
		{SKU: 1, Title: "primero", Price: decimal.NewFromInt(1)},
		{SKU: 1, Title: "segundo", Price: decimal.NewFromInt(2)},
	})
	p, ok := uc.FindBySKU(1)
	require.True(t, ok)
	assert.Equal(t, "primero", p.Title)
}

func TestAvailableSizes(t *testing.T) {
	uc := NewUseCase(nil, zerolog.Nop())
	assert.Empty(t, uc.AvailableSizes())
	uc.Replace(sampleProducts())
	assert.Equal(t, []string{"L", "M", "S", "XL"}, uc.AvailableSizes())
}

func TestCriteriaKey(t *testing.T) {
	a := criteriaKey(entity.FilterCriteria{Sizes: []string{"L", "M"}})
	b := criteriaKey(entity.FilterCriteria{Sizes: []string{"M", "L", "L"}})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, criteriaKey(entity.FilterCriteria{Sizes: []string{"L", "M"}, MaxPrice: dec("1")}))
}
