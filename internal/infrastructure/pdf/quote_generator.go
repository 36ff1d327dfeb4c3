// Package pdf genera la cotización en PDF del carrito de una sesión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda                │  COTIZACIÓN + Ref + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Talla / Estilo | P.Unit | Subtotal │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Cuotas / TOTAL                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de la referencia + vigencia                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/money"
)

var _ ports.QuotePDFGenerator = (*QuoteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 26, Blue: 32}
	colorAccent  = &props.Color{Red: 234, Green: 191, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// validity días de vigencia impresos en la cotización.
const validity = 7

// ── Generator ─────────────────────────────────────────────────────────────────

// QuoteGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type QuoteGenerator struct {
	storeName string
	now       func() time.Time
}

// NewQuoteGenerator construye el generador con el nombre de la tienda para el encabezado.
func NewQuoteGenerator(storeName string) *QuoteGenerator {
	return &QuoteGenerator{storeName: storeName, now: time.Now}
}

// GenerateQuotePDF genera el PDF del snapshot y devuelve sus bytes.
func (g *QuoteGenerator) GenerateQuotePDF(ctx context.Context, reference string, cart entity.CartSnapshot) ([]byte, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+reference, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)
	issued := g.now()

	m.AddRows(headerRow(g.storeName, reference, issued))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(cart.Items())...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cart))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(reference, issued.AddDate(0, 0, validity)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(storeName, reference string, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cotización del carrito de compras", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(reference, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Talla / Estilo", 3, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func tableDetailRows(items []entity.CartLineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		size := "-"
		if len(it.AvailableSizes) > 0 {
			size = it.AvailableSizes[0]
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				size+" | "+nonEmpty(it.Style, "-"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				money.FormatWithSymbol(it.Price, it.CurrencyID, it.CurrencyFormat),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatWithSymbol(it.Subtotal(), it.CurrencyID, it.CurrencyFormat),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(cart entity.CartSnapshot) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	currencyID, symbol := cart.Currency()
	total := cart.TotalPrice()
	installments := "-"
	if n := cart.Installments(); n > 0 {
		per := total.Div(decimal.NewFromInt(int64(n))).Round(2)
		installments = fmt.Sprintf("hasta %d x %s", n, money.FormatWithSymbol(per, currencyID, symbol))
	}

	return row.New(26).Add(
		col.New(4),
		col.New(3).Add(
			label("Unidades:"),
			label("Cuotas:"),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 12,
			}),
		),
		col.New(5).Add(
			value(fmt.Sprintf("%d", cart.TotalQuantity())),
			text.New(installments, props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(money.FormatWithSymbol(total, currencyID, symbol), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorAccent, Right: 1, Top: 12,
			}),
		),
	)
}

func footerRow(reference string, validUntil time.Time) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(reference, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Referencia de la cotización:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3,
			}),
			text.New(reference, props.Text{
				Size: 8, Top: 9, Left: 3, Color: colorGray,
			}),
			text.New("Precios válidos hasta el "+validUntil.Format("02/01/2006")+
				". Sujeto a disponibilidad de inventario.", props.Text{
				Size: 7, Top: 18, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
