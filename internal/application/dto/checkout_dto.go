package dto

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

// CheckoutRequest datos del comprador para POST /api/checkout.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Validate exige nombre y un correo bien formado.
func (r *CheckoutRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	if r.Name == "" || r.Email == "" {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return domain.ErrInvalidInput
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = "card"
	}
	return nil
}

// PaymentItem línea del payload de pago.
type PaymentItem struct {
	SKU       int64           `json:"sku"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PaymentCustomer comprador del payload de pago.
type PaymentCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// PaymentPayload cuerpo enviado a POST /api/payment.
type PaymentPayload struct {
	Reference     string          `json:"reference"`
	Items         []PaymentItem   `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Installments  int             `json:"installments"`
	PaymentMethod string          `json:"payment_method"`
	Customer      PaymentCustomer `json:"customer"`
}
