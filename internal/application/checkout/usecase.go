// Package checkout arma el pago del carrito de una sesión y lo envía al servicio remoto.
package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
	engine "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Carts acceso al carrito de una sesión.
type Carts interface {
	BeginCheckout(sessionID string) (entity.CartSnapshot, error)
	EndCheckout(sessionID string)
	Dispatch(sessionID string, op engine.Operation) (entity.CartSnapshot, error)
}

// UseCase envío de pagos.
type UseCase struct {
	carts    Carts
	payments ports.PaymentSubmitter
	newRef   func() string
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(carts Carts, payments ports.PaymentSubmitter, log zerolog.Logger) *UseCase {
	return &UseCase{
		carts:    carts,
		payments: payments,
		newRef:   func() string { return uuid.New().String() },
		log:      log.With().Str("component", "checkout").Logger(),
	}
}

// Submit envía el carrito vigente como pago. Los errores de entrada (sesión, carrito vacío,
// datos del comprador) salen como error; los del servicio remoto viajan en el FetchResult.
// Con el pago aprobado se descuenta del carrito exactamente lo que se pagó. Un segundo
// pago sobre la misma sesión mientras el primero sigue en curso recibe ErrCheckoutInProgress.
func (uc *UseCase) Submit(ctx context.Context, sessionID string, in dto.CheckoutRequest) (ports.FetchResult[ports.PaymentReceipt], error) {
	if err := in.Validate(); err != nil {
		return ports.FetchResult[ports.PaymentReceipt]{}, err
	}
	snap, err := uc.carts.BeginCheckout(sessionID)
	if err != nil {
		return ports.FetchResult[ports.PaymentReceipt]{}, err
	}
	defer uc.carts.EndCheckout(sessionID)
	if snap.IsEmpty() {
		return ports.FetchResult[ports.PaymentReceipt]{}, domain.ErrEmptyCart
	}

	payload := BuildPayload(uc.newRef(), snap, in)
	log := uc.log.With().Str("session_id", sessionID).Str("reference", payload.Reference).Logger()
	log.Info().Str("total", payload.Total.String()).Int("items", len(payload.Items)).Msg("enviando pago")

	res := uc.payments.ProcessPayment(ctx, payload)
	if !res.OK() {
		log.Warn().Str("error", res.Error).Msg("pago rechazado")
		return res, nil
	}

	if _, err := uc.carts.Dispatch(sessionID, settle(snap)); err != nil {
		// El pago ya fue aceptado; la sesión pudo expirar entretanto.
		log.Error().Err(err).Msg("pago aprobado pero no se pudo vaciar el carrito")
		return res, nil
	}
	if res.Data == nil {
		res.Data = ports.PaymentReceipt{}
	}
	if _, ok := res.Data["reference"]; !ok {
		res.Data["reference"] = payload.Reference
	}
	log.Info().Msg("pago aprobado")
	return res, nil
}

// BuildPayload arma el cuerpo de POST /api/payment.
func BuildPayload(reference string, snap entity.CartSnapshot, in dto.CheckoutRequest) dto.PaymentPayload {
	currency, _ := snap.Currency()
	items := snap.Items()
	out := dto.PaymentPayload{
		Reference:     reference,
		Items:         make([]dto.PaymentItem, 0, len(items)),
		TotalQuantity: snap.TotalQuantity(),
		Total:         snap.TotalPrice(),
		Currency:      currency,
		Installments:  snap.Installments(),
		PaymentMethod: in.PaymentMethod,
		Customer: dto.PaymentCustomer{
			Name:    in.Name,
			Email:   in.Email,
			Address: in.Address,
		},
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.PaymentItem{
			SKU:       it.SKU,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Subtotal:  it.Subtotal(),
		})
	}
	return out
}

// settle descuenta las cantidades pagadas. Si el carrito no cambió durante el pago
// el resultado es el carrito vacío; lo agregado entretanto se conserva.
func settle(paid entity.CartSnapshot) engine.Operation {
	return func(s entity.CartSnapshot) (entity.CartSnapshot, error) {
		for _, line := range paid.Items() {
			for i := 0; i < line.Quantity; i++ {
				if !s.Contains(line.SKU) {
					break
				}
				s = engine.DecreaseQuantity(s, line.SKU)
			}
		}
		return s, nil
	}
}

