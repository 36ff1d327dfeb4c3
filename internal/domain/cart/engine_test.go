package cart_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func product(sku int64, price string) entity.Product {
	return entity.Product{
		ID:             int(sku),
		SKU:            sku,
		Title:          "Producto de prueba",
		Price:          decimal.RequireFromString(price),
		CurrencyID:     "USD",
		CurrencyFormat: "$",
		AvailableSizes: []string{"M"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios básicos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_MismoSKUDosVeces_UnaLineaCantidadDos(t *testing.T) {
	s, err := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	require.NoError(t, err)
	s, err = cart.AddProduct(s, product(1, "10"))
	require.NoError(t, err)

	require.Equal(t, 1, s.Len())
	line, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddProduct_SKUNuevoSeAgregaAlFinal(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	s, _ = cart.AddProduct(s, product(2, "5"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].SKU)
	assert.Equal(t, int64(2), items[1].SKU)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddProduct_ProductoInvalido_SnapshotSinCambios(t *testing.T) {
	base, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))

	invalid := product(0, "10")
	s, err := cart.AddProduct(base, invalid)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	assert.Equal(t, base.Items(), s.Items())

	noTitle := product(3, "10")
	noTitle.Title = "  "
	_, err = cart.AddProduct(base, noTitle)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

func TestDecreaseQuantity_DesdeUno_EliminaLaLinea(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	s = cart.DecreaseQuantity(s, 1)

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
}

func TestDecreaseQuantity_SKUInexistente_NoOp(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	out := cart.DecreaseQuantity(s, 99)
	assert.Equal(t, s.Items(), out.Items())
}

func TestIncreaseYRemove(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	s, _ = cart.AddProduct(s, product(2, "2.5"))
	s = cart.IncreaseQuantity(s, 2)
	s = cart.IncreaseQuantity(s, 42) // no-op

	line, _ := s.Find(2)
	assert.Equal(t, 2, line.Quantity)

	s = cart.RemoveProduct(s, 1)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())

	same := cart.RemoveProduct(s, 1)
	assert.Equal(t, s.Items(), same.Items())
}

func TestTotales_SeDerivanDeLasLineas(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10.90"))
	s, _ = cart.AddProduct(s, product(1, "10.90"))
	s, _ = cart.AddProduct(s, product(2, "29.45"))

	assert.Equal(t, 3, cart.TotalQuantity(s))
	assert.True(t, cart.TotalPrice(s).Equal(decimal.RequireFromString("51.25")),
		"total = 2*10.90 + 29.45, obtenido %s", cart.TotalPrice(s))

	assert.True(t, cart.TotalPrice(entity.EmptyCart()).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// No mutación de snapshots anteriores
// ──────────────────────────────────────────────────────────────────────────────

func TestOperaciones_NoModificanElSnapshotAnterior(t *testing.T) {
	p := product(1, "10")
	s1, _ := cart.AddProduct(entity.EmptyCart(), p)
	s1, _ = cart.AddProduct(s1, product(2, "3"))
	before := s1.Items()

	s2, _ := cart.AddProduct(s1, p)
	_ = cart.IncreaseQuantity(s1, 2)
	_ = cart.DecreaseQuantity(s1, 1)
	_ = cart.RemoveProduct(s1, 2)

	assert.Equal(t, before, s1.Items(), "el snapshot anterior no debe cambiar")
	line, _ := s2.Find(1)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, []string{"M"}, p.AvailableSizes, "el producto de entrada no se modifica")
}

func TestItems_DevuelveCopia(t *testing.T) {
	s, _ := cart.AddProduct(entity.EmptyCart(), product(1, "10"))
	items := s.Items()
	items[0].Quantity = 100
	items[0].AvailableSizes[0] = "XXL"

	line, _ := s.Find(1)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "M", line.AvailableSizes[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre secuencias aleatorias
// ──────────────────────────────────────────────────────────────────────────────

func TestInvariantes_SecuenciasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 200; run++ {
		s := entity.EmptyCart()
		for step := 0; step < 50; step++ {
			sku := int64(rng.Intn(5) + 1)
			prev := s.Items()
			var next entity.CartSnapshot
			switch rng.Intn(4) {
			case 0:
				next, _ = cart.AddProduct(s, product(sku, "1"))
			case 1:
				next = cart.IncreaseQuantity(s, sku)
			case 2:
				next = cart.DecreaseQuantity(s, sku)
			default:
				next = cart.RemoveProduct(s, sku)
			}
			require.Equal(t, prev, s.Items(), "la operación modificó el snapshot anterior")
			s = next

			seen := make(map[int64]bool)
			for _, it := range s.Items() {
				require.False(t, seen[it.SKU], "SKU %d duplicado", it.SKU)
				seen[it.SKU] = true
				require.GreaterOrEqual(t, it.Quantity, 1, "cantidad por debajo de 1")
			}
		}
	}
}

func TestOperation_DespachaSobreElSnapshot(t *testing.T) {
	ops := []cart.Operation{
		cart.Add(product(1, "4")),
		cart.Add(product(1, "4")),
		cart.Increase(1),
		cart.Decrease(1),
		cart.Add(product(2, "1")),
		cart.Remove(2),
	}
	s := entity.EmptyCart()
	for _, op := range ops {
		var err error
		s, err = op(s)
		require.NoError(t, err)
	}
	line, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 1, s.Len())

	s, _ = cart.Remove(1)(s)
	assert.True(t, s.IsEmpty())
}
