package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

// Product representa un producto del catálogo tal como lo entrega el servicio remoto.
// Es inmutable durante la sesión: una nueva consulta reemplaza el catálogo completo.
type Product struct {
	ID             int             `json:"id"`
	SKU            int64           `json:"sku"` // identidad estable dentro del catálogo
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	AvailableSizes []string        `json:"availableSizes"`
	Style          string          `json:"style"`
	Price          decimal.Decimal `json:"price"`
	Installments   int             `json:"installments"`
	CurrencyID     string          `json:"currencyId"`
	CurrencyFormat string          `json:"currencyFormat"`
	IsFreeShipping bool            `json:"isFreeShipping"`
}

// Validate rechaza productos estructuralmente inválidos (sin SKU o sin título).
func (p Product) Validate() error {
	if p.SKU == 0 || strings.TrimSpace(p.Title) == "" {
		return domain.ErrInvalidProduct
	}
	return nil
}

// HasSize indica si la talla está entre las disponibles.
func (p Product) HasSize(size string) bool {
	for _, s := range p.AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}

// InstallmentPrice devuelve el valor de cada cuota (precio / cuotas, 2 decimales).
// ok es false cuando el producto no se vende a cuotas.
func (p Product) InstallmentPrice() (decimal.Decimal, bool) {
	if p.Installments <= 0 {
		return decimal.Zero, false
	}
	return p.Price.Div(decimal.NewFromInt(int64(p.Installments))).Round(2), true
}

// clone copia el slice de tallas para que ninguna copia comparta memoria con el original.
func (p Product) clone() Product {
	if p.AvailableSizes != nil {
		sizes := make([]string, len(p.AvailableSizes))
		copy(sizes, p.AvailableSizes)
		p.AvailableSizes = sizes
	}
	return p
}
