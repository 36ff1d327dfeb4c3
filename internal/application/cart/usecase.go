package cart

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/domain"
	engine "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductLookup resuelve un SKU contra el catálogo vigente.
type ProductLookup interface {
	FindBySKU(sku int64) (entity.Product, bool)
}

// UseCase operaciones de carrito de una sesión.
type UseCase struct {
	store   *SessionStore
	catalog ProductLookup
	log     zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *SessionStore, catalog ProductLookup, log zerolog.Logger) *UseCase {
	return &UseCase{
		store:   store,
		catalog: catalog,
		log:     log.With().Str("component", "cart").Logger(),
	}
}

// AddProduct agrega una unidad del SKU y abre el panel del carrito.
// El producto se toma del catálogo vigente.
func (uc *UseCase) AddProduct(sessionID string, sku int64) (State, error) {
	p, ok := uc.catalog.FindBySKU(sku)
	if !ok {
		return State{}, fmt.Errorf("producto %d: %w", sku, domain.ErrNotFound)
	}
	if _, err := uc.apply(sessionID, "add", sku, engine.Add(p)); err != nil {
		return State{}, err
	}
	return uc.store.OpenCart(sessionID)
}

// Increase suma una unidad a la línea del SKU.
func (uc *UseCase) Increase(sessionID string, sku int64) (State, error) {
	return uc.apply(sessionID, "increase", sku, engine.Increase(sku))
}

// Decrease resta una unidad; la línea desaparece al llegar a cero.
func (uc *UseCase) Decrease(sessionID string, sku int64) (State, error) {
	return uc.apply(sessionID, "decrease", sku, engine.Decrease(sku))
}

// Remove quita la línea del SKU.
func (uc *UseCase) Remove(sessionID string, sku int64) (State, error) {
	return uc.apply(sessionID, "remove", sku, engine.Remove(sku))
}

// View devuelve el estado vigente.
func (uc *UseCase) View(sessionID string) (State, error) {
	return uc.store.State(sessionID)
}

// Open / Close alternan la visibilidad del panel.
func (uc *UseCase) Open(sessionID string) (State, error)  { return uc.store.OpenCart(sessionID) }
func (uc *UseCase) Close(sessionID string) (State, error) { return uc.store.CloseCart(sessionID) }

func (uc *UseCase) apply(sessionID, op string, sku int64, fn engine.Operation) (State, error) {
	if _, err := uc.store.Dispatch(sessionID, fn); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Str("op", op).Int64("sku", sku).Msg("operación de carrito rechazada")
		return State{}, err
	}
	// Releer snapshot y bandera juntos.
	return uc.store.State(sessionID)
}
