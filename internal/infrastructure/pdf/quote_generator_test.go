package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func sampleCart() entity.CartSnapshot {
	return entity.NewCartSnapshot([]entity.CartLineItem{
		{
			Product: entity.Product{
				SKU: 8552515751438644, Title: "Cat Tee Black T-Shirt", Style: "Black with custom print",
				AvailableSizes: []string{"X", "L"}, Price: decimal.RequireFromString("10.90"),
				Installments: 9, CurrencyID: "USD", CurrencyFormat: "$",
			},
			Quantity: 2,
		},
		{
			Product: entity.Product{
				SKU: 18644119330491312, Title: "Sphynx Tie Dye Grey T-Shirt",
				Price: decimal.RequireFromString("29.45"), CurrencyID: "USD", CurrencyFormat: "$",
			},
			Quantity: 1,
		},
	})
}

func TestGenerateQuotePDF(t *testing.T) {
	g := NewQuoteGenerator("Tienda")
	g.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	out, err := g.GenerateQuotePDF(context.Background(), "ref-123", sampleCart())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateQuotePDF_CarritoVacio(t *testing.T) {
	_, err := NewQuoteGenerator("Tienda").GenerateQuotePDF(context.Background(), "ref", entity.EmptyCart())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestGenerateQuotePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewQuoteGenerator("Tienda").GenerateQuotePDF(ctx, "ref", sampleCart())
	assert.ErrorIs(t, err, context.Canceled)
}
