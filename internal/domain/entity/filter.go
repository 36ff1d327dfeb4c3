package entity

import "github.com/shopspring/decimal"

// FilterCriteria criterios del filtro de catálogo.
// Sizes vacío no restringe; MaxPrice nil no impone tope (el tope es inclusivo).
type FilterCriteria struct {
	Sizes    []string
	MaxPrice *decimal.Decimal
}
