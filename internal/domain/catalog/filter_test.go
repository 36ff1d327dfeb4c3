package catalog_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/domain/catalog"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func maxPrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFilter_TallaAusente_ResultadoVacio(t *testing.T) {
	products := []entity.Product{{SKU: 1, Title: "A", Price: decimal.NewFromInt(10), AvailableSizes: []string{"M"}}}
	out := catalog.Filter(products, entity.FilterCriteria{Sizes: []string{"L"}, MaxPrice: maxPrice("100")})
	assert.Empty(t, out)
}

func TestFilter_TodasLasTallasYPrecioInclusivo(t *testing.T) {
	products := []entity.Product{
		{SKU: 1, Price: decimal.NewFromInt(10), AvailableSizes: []string{"M", "L"}},
		{SKU: 2, Price: decimal.NewFromInt(20), AvailableSizes: []string{"M", "L", "XL"}},
		{SKU: 3, Price: decimal.NewFromInt(25), AvailableSizes: []string{"M", "L"}},
		{SKU: 4, Price: decimal.NewFromInt(5), AvailableSizes: []string{"M"}},
	}
	out := catalog.Filter(products, entity.FilterCriteria{Sizes: []string{"M", "L"}, MaxPrice: maxPrice("20")})

	var skus []int64
	for _, p := range out {
		skus = append(skus, p.SKU)
	}
	assert.Equal(t, []int64{1, 2}, skus, "conserva el orden y el tope es inclusivo")
}

func TestFilter_SinCriterios_DevuelveTodo(t *testing.T) {
	products := []entity.Product{
		{SKU: 1, Price: decimal.NewFromInt(10)},
		{SKU: 2, Price: decimal.NewFromInt(1000)},
	}
	out := catalog.Filter(products, entity.FilterCriteria{})
	assert.Len(t, out, 2)

	out[0].SKU = 99
	assert.Equal(t, int64(1), products[0].SKU, "el resultado es un slice nuevo")
}

func TestFilter_Idempotente(t *testing.T) {
	sizes := []string{"XS", "S", "M", "L", "XL"}
	rng := rand.New(rand.NewSource(11))
	for run := 0; run < 100; run++ {
		var products []entity.Product
		for i := 0; i < 30; i++ {
			var avail []string
			for _, s := range sizes {
				if rng.Intn(2) == 0 {
					avail = append(avail, s)
				}
			}
			products = append(products, entity.Product{
				SKU:            int64(i + 1),
				Price:          decimal.NewFromInt(int64(rng.Intn(100))),
				AvailableSizes: avail,
			})
		}
		criteria := entity.FilterCriteria{Sizes: []string{sizes[rng.Intn(len(sizes))]}}
		if rng.Intn(2) == 0 {
			criteria.MaxPrice = maxPrice("50")
		}

		once := catalog.Filter(products, criteria)
		twice := catalog.Filter(once, criteria)
		assert.Equal(t, once, twice)
	}
}

func TestSizes_OrdenadasSinDuplicados(t *testing.T) {
	products := []entity.Product{
		{AvailableSizes: []string{"XL", "M"}},
		{AvailableSizes: []string{"M", "L"}},
	}
	assert.Equal(t, []string{"L", "M", "XL"}, catalog.Sizes(products))
}
