package entity

import "github.com/shopspring/decimal"

// CartLineItem es un producto del carrito junto con su cantidad (siempre >= 1).
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal devuelve precio * cantidad.
func (l CartLineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot es el estado completo e inmutable del carrito en un instante.
// Las líneas viven en un slice no exportado: ninguna operación modifica un snapshot
// existente, cada cambio construye uno nuevo (copy-on-write).
type CartSnapshot struct {
	items []CartLineItem
}

// EmptyCart devuelve el snapshot vacío.
func EmptyCart() CartSnapshot {
	return CartSnapshot{}
}

// NewCartSnapshot construye un snapshot a partir de líneas ya validadas.
// Copia la entrada para que el llamador no conserve un alias del estado interno.
func NewCartSnapshot(items []CartLineItem) CartSnapshot {
	if len(items) == 0 {
		return CartSnapshot{}
	}
	out := make([]CartLineItem, len(items))
	for i, it := range items {
		it.Product = it.Product.clone()
		out[i] = it
	}
	return CartSnapshot{items: out}
}

// Items devuelve una copia de las líneas en orden de inserción.
func (s CartSnapshot) Items() []CartLineItem {
	out := make([]CartLineItem, len(s.items))
	for i, it := range s.items {
		it.Product = it.Product.clone()
		out[i] = it
	}
	return out
}

// Len devuelve el número de líneas.
func (s CartSnapshot) Len() int { return len(s.items) }

// IsEmpty indica si el carrito no tiene líneas.
func (s CartSnapshot) IsEmpty() bool { return len(s.items) == 0 }

// Find devuelve la línea con el SKU indicado.
func (s CartSnapshot) Find(sku int64) (CartLineItem, bool) {
	if i := s.indexOf(sku); i >= 0 {
		it := s.items[i]
		it.Product = it.Product.clone()
		return it, true
	}
	return CartLineItem{}, false
}

// Contains indica si existe una línea con el SKU.
func (s CartSnapshot) Contains(sku int64) bool {
	return s.indexOf(sku) >= 0
}

// TotalPrice suma los subtotales de todas las líneas. Se calcula siempre, no se almacena.
func (s CartSnapshot) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// TotalQuantity suma las cantidades de todas las líneas.
func (s CartSnapshot) TotalQuantity() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Currency devuelve la moneda de la primera línea ("" si el carrito está vacío).
func (s CartSnapshot) Currency() (id, symbol string) {
	if len(s.items) == 0 {
		return "", ""
	}
	return s.items[0].CurrencyID, s.items[0].CurrencyFormat
}

// Installments devuelve el mayor número de cuotas entre las líneas del carrito.
func (s CartSnapshot) Installments() int {
	n := 0
	for _, it := range s.items {
		if it.Installments > n {
			n = it.Installments
		}
	}
	return n
}

func (s CartSnapshot) indexOf(sku int64) int {
	for i, it := range s.items {
		if it.SKU == sku {
			return i
		}
	}
	return -1
}
