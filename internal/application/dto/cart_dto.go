package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

// AddCartItemRequest cuerpo de POST /api/cart/items.
type AddCartItemRequest struct {
	SKU int64 `json:"sku"`
}

// CartLineResponse línea del carrito tal como se muestra.
type CartLineResponse struct {
	SKU                int64           `json:"sku"`
	Title              string          `json:"title"`
	Style              string          `json:"style"`
	Size               string          `json:"size"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	FormattedUnitPrice string          `json:"formattedUnitPrice"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	FormattedSubtotal  string          `json:"formattedSubtotal"`
	CanDecrease        bool            `json:"canDecrease"`
	ImageURL           string          `json:"imageUrl"`
}

// CartResponse vista completa del carrito.
type CartResponse struct {
	IsOpen           bool               `json:"isOpen"`
	Items            []CartLineResponse `json:"items"`
	TotalQuantity    int                `json:"totalQuantity"`
	TotalPrice       decimal.Decimal    `json:"totalPrice"`
	FormattedTotal   string             `json:"formattedTotal"`
	Installments     int                `json:"installments"`
	InstallmentPrice string             `json:"installmentPrice,omitempty"`
	CurrencyID       string             `json:"currencyId"`
	CurrencyFormat   string             `json:"currencyFormat"`
}

// NewCartResponse arma la vista a partir del snapshot.
func NewCartResponse(snapshot entity.CartSnapshot, isOpen bool, imageURL ImageURLFunc) CartResponse {
	currencyID, symbol := snapshot.Currency()
	items := snapshot.Items()
	lines := make([]CartLineResponse, 0, len(items))
	for _, it := range items {
		line := CartLineResponse{
			SKU:                it.SKU,
			Title:              it.Title,
			Style:              it.Style,
			Quantity:           it.Quantity,
			UnitPrice:          it.Price,
			FormattedUnitPrice: money.FormatWithSymbol(it.Price, it.CurrencyID, it.CurrencyFormat),
			Subtotal:           it.Subtotal(),
			FormattedSubtotal:  money.FormatWithSymbol(it.Subtotal(), it.CurrencyID, it.CurrencyFormat),
			CanDecrease:        it.Quantity > 1,
		}
		if len(it.AvailableSizes) > 0 {
			line.Size = it.AvailableSizes[0]
		}
		if imageURL != nil {
			line.ImageURL = imageURL(it.SKU)
		}
		lines = append(lines, line)
	}

	total := snapshot.TotalPrice()
	out := CartResponse{
		IsOpen:         isOpen,
		Items:          lines,
		TotalQuantity:  snapshot.TotalQuantity(),
		TotalPrice:     total,
		FormattedTotal: money.FormatWithSymbol(total, currencyID, symbol),
		Installments:   snapshot.Installments(),
		CurrencyID:     currencyID,
		CurrencyFormat: symbol,
	}
	if out.Installments > 0 && total.IsPositive() {
		per := total.Div(decimal.NewFromInt(int64(out.Installments))).Round(2)
		out.InstallmentPrice = money.FormatWithSymbol(per, currencyID, symbol)
	}
	return out
}
