// Package money formatea montos para mostrarlos según la moneda del catálogo.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultScale decimales usados cuando la moneda no es reconocida.
const defaultScale = 2

// locales asocia cada moneda con el idioma cuyos separadores se usan al mostrarla.
var locales = map[string]language.Tag{
	"BRL": language.BrazilianPortuguese,
	"COP": language.MustParse("es-CO"),
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"JPY": language.Japanese,
	"USD": language.AmericanEnglish,
}

// resolve devuelve el idioma y los decimales de la moneda; desconocida -> inglés, 2.
func resolve(currencyID string) (language.Tag, int) {
	code := strings.ToUpper(strings.TrimSpace(currencyID))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return language.English, defaultScale
	}
	tag, ok := locales[unit.String()]
	if !ok {
		tag = language.English
	}
	scale, _ := currency.Standard.Rounding(unit)
	return tag, scale
}

// Scale decimales con que se muestra la moneda (USD 2, JPY 0; desconocida 2).
func Scale(currencyID string) int {
	_, scale := resolve(currencyID)
	return scale
}

// Format convierte un monto y un código ISO de moneda en el texto a mostrar.
// Es total: una moneda desconocida o mal escrita se formatea con reglas en inglés
// y dos decimales. Los dígitos salen del decimal, nunca de un float64.
func Format(amount decimal.Decimal, currencyID string) string {
	tag, scale := resolve(currencyID)
	p := message.NewPrinter(tag)

	rounded := amount.Round(int32(scale))
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(scale)), ".")

	out := groupWhole(p, whole)
	if scale > 0 {
		out += decimalSeparator(p) + frac
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// groupWhole agrupa la parte entera según el idioma. Fuera del rango de int64 se
// agrupa de a tres con el separador del idioma.
func groupWhole(p *message.Printer, whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return p.Sprintf("%v", number.Decimal(n))
	}
	sep := groupSeparator(p)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
}

func groupSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1000))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "000")
}

// FormatWithSymbol antepone el símbolo de la moneda (ej. "$ 10.90").
// Sin símbolo se usa el código ISO.
func FormatWithSymbol(amount decimal.Decimal, currencyID, symbol string) string {
	if symbol == "" {
		symbol = strings.ToUpper(strings.TrimSpace(currencyID))
	}
	formatted := Format(amount, currencyID)
	if symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}

// SplitCents separa la parte entera del separador decimal más los decimales de la moneda,
// como se muestran en la tarjeta de producto. Monedas sin decimales no tienen centavos.
func SplitCents(formatted, currencyID string) (whole, cents string) {
	scale := Scale(currencyID)
	n := scale + 1
	if scale == 0 || len(formatted) < n {
		return formatted, ""
	}
	return formatted[:len(formatted)-n], formatted[len(formatted)-n:]
}
