package ports

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Mensajes de respaldo cuando una operación remota falla sin un error concreto que reportar.
const (
	FetchProductsFallback  = "Failed to fetch products. Please try again later."
	ProcessPaymentFallback = "Payment failed. Please try again later."
)

// FetchResult resultado uniforme de una operación remota.
// Cuando el llamador lo observa Loading ya es false y se cumple exactamente una de:
// Data con valor y Error vacío, o Data en cero y Error con el mensaje.
type FetchResult[T any] struct {
	Data    T
	Error   string
	Loading bool
}

// Succeeded construye un resultado exitoso.
func Succeeded[T any](data T) FetchResult[T] {
	return FetchResult[T]{Data: data}
}

// Failed construye un resultado fallido con data en cero.
func Failed[T any](msg string) FetchResult[T] {
	return FetchResult[T]{Error: msg}
}

// OK indica si la operación terminó con éxito.
func (r FetchResult[T]) OK() bool { return r.Error == "" }

// MarshalJSON serializa como {"data": ..., "error": ..., "loading": false};
// en caso de error data es null y en caso de éxito error es null.
func (r FetchResult[T]) MarshalJSON() ([]byte, error) {
	type wire struct {
		Data    any     `json:"data"`
		Error   *string `json:"error"`
		Loading bool    `json:"loading"`
	}
	w := wire{Loading: r.Loading}
	if r.Error != "" {
		msg := r.Error
		w.Error = &msg
	} else {
		w.Data = r.Data
	}
	return json.Marshal(w)
}

// PaymentReceipt respuesta opaca del endpoint de pagos.
type PaymentReceipt map[string]any

// CatalogFetcher puerto de salida para obtener el catálogo remoto.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) FetchResult[[]entity.Product]
}

// PaymentSubmitter puerto de salida para enviar un pago al endpoint remoto.
// El payload solo necesita ser serializable a JSON.
type PaymentSubmitter interface {
	ProcessPayment(ctx context.Context, payload any) FetchResult[PaymentReceipt]
}
