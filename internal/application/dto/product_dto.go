package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

// InvalidProductMessage texto que reemplaza la tarjeta de un producto sin SKU o título.
const InvalidProductMessage = "Invalid product data."

// ProductResponse tarjeta de producto del catálogo.
type ProductResponse struct {
	ID               int             `json:"id"`
	SKU              int64           `json:"sku"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Style            string          `json:"style"`
	AvailableSizes   []string        `json:"availableSizes"`
	Price            decimal.Decimal `json:"price"`
	FormattedPrice   string          `json:"formattedPrice"`
	PriceWhole       string          `json:"priceWhole"`
	PriceCents       string          `json:"priceCents"`
	Installments     int             `json:"installments"`
	InstallmentPrice string          `json:"installmentPrice,omitempty"`
	CurrencyID       string          `json:"currencyId"`
	CurrencyFormat   string          `json:"currencyFormat"`
	IsFreeShipping   bool            `json:"isFreeShipping"`
	ImageURL         string          `json:"imageUrl"`
	Error            string          `json:"error,omitempty"`
}

// CatalogResponse listado filtrado.
type CatalogResponse struct {
	Items   []ProductResponse `json:"items"`
	Total   int               `json:"total"`
	Version uint64            `json:"version"`
}

// SizesResponse tallas disponibles para el filtro.
type SizesResponse struct {
	Sizes []string `json:"sizes"`
}

// NewProductResponse arma la tarjeta. Un producto inválido solo lleva el mensaje de error
// y los campos que tenga.
func NewProductResponse(p entity.Product, imageURL ImageURLFunc) ProductResponse {
	out := ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Title:          p.Title,
		Description:    p.Description,
		Style:          p.Style,
		AvailableSizes: p.AvailableSizes,
		Price:          p.Price,
		Installments:   p.Installments,
		CurrencyID:     p.CurrencyID,
		CurrencyFormat: p.CurrencyFormat,
		IsFreeShipping: p.IsFreeShipping,
	}
	if out.AvailableSizes == nil {
		out.AvailableSizes = []string{}
	}
	if p.Validate() != nil {
		out.Error = InvalidProductMessage
		return out
	}
	out.FormattedPrice = money.Format(p.Price, p.CurrencyID)
	out.PriceWhole, out.PriceCents = money.SplitCents(out.FormattedPrice, p.CurrencyID)
	if ip, ok := p.InstallmentPrice(); ok {
		out.InstallmentPrice = money.FormatWithSymbol(ip, p.CurrencyID, p.CurrencyFormat)
	}
	if imageURL != nil {
		out.ImageURL = imageURL(p.SKU)
	}
	return out
}

// NewCatalogResponse mapea un listado completo.
func NewCatalogResponse(products []entity.Product, version uint64, imageURL ImageURLFunc) CatalogResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p, imageURL))
	}
	return CatalogResponse{Items: items, Total: len(items), Version: version}
}
