package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/pkg/money"
)

func TestFormat_USDConDosDecimales(t *testing.T) {
	assert.Equal(t, "10.90", money.Format(decimal.RequireFromString("10.9"), "USD"))
	assert.Equal(t, "1,234.50", money.Format(decimal.RequireFromString("1234.5"), "USD"))
}

func TestFormat_BRLUsaComaDecimal(t *testing.T) {
	assert.Equal(t, "10,90", money.Format(decimal.RequireFromString("10.9"), "BRL"))
	assert.Equal(t, "1.234,50", money.Format(decimal.RequireFromString("1234.5"), "brl"),
		"el código de moneda no distingue mayúsculas")
}

func TestFormat_MonedaDesconocidaNoFalla(t *testing.T) {
	assert.Equal(t, "5.00", money.Format(decimal.NewFromInt(5), "???"))
	assert.Equal(t, "5.00", money.Format(decimal.NewFromInt(5), ""))
}

func TestFormatWithSymbol(t *testing.T) {
	assert.Equal(t, "$ 29.45", money.FormatWithSymbol(decimal.RequireFromString("29.45"), "USD", "$"))
	assert.Equal(t, "USD 3.00", money.FormatWithSymbol(decimal.NewFromInt(3), "USD", ""))
}

func TestFormat_MontoGrandeSinPerderDigitos(t *testing.T) {
	assert.Equal(t, "12,345,678,901,234,567.89",
		money.Format(decimal.RequireFromString("12345678901234567.89"), "USD"))
	assert.Equal(t, "123,456,789,012,345,678,901.00",
		money.Format(decimal.RequireFromString("123456789012345678901"), "USD"),
		"fuera de int64 se agrupa igual")
	assert.Equal(t, "1.234.567.890.123.456.789.012,34",
		money.Format(decimal.RequireFromString("1234567890123456789012.34"), "BRL"))
}

func TestFormat_RedondeoYNegativos(t *testing.T) {
	assert.Equal(t, "10.01", money.Format(decimal.RequireFromString("10.005"), "USD"))
	assert.Equal(t, "-1,234.50", money.Format(decimal.RequireFromString("-1234.5"), "USD"))
	assert.Equal(t, "0.00", money.Format(decimal.RequireFromString("-0.001"), "USD"))
}

func TestFormat_MonedaSinDecimales(t *testing.T) {
	assert.Equal(t, 0, money.Scale("JPY"))
	assert.Equal(t, "1,235", money.Format(decimal.RequireFromString("1234.5"), "JPY"))
}

func TestSplitCents(t *testing.T) {
	whole, cents := money.SplitCents("10,90", "BRL")
	assert.Equal(t, "10", whole)
	assert.Equal(t, ",90", cents)

	whole, cents = money.SplitCents("9", "USD")
	assert.Equal(t, "9", whole)
	assert.Empty(t, cents)
}

func TestSplitCents_MonedaSinDecimales(t *testing.T) {
	whole, cents := money.SplitCents("1,234", "JPY")
	assert.Equal(t, "1,234", whole)
	assert.Empty(t, cents)
}
