// Package cart mantiene el estado de carrito de cada sesión y expone los casos de uso
// que la capa HTTP invoca. El motor puro vive en internal/domain/cart; aquí solo se
// guarda el snapshot vigente y se serializan las operaciones por sesión.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/domain"
	engine "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// DefaultSessionTTL inactividad tras la cual una sesión se descarta.
const DefaultSessionTTL = 120 * time.Minute

// State vista del carrito de una sesión: snapshot vigente más la bandera de UI.
type State struct {
	SessionID string
	Snapshot  entity.CartSnapshot
	IsOpen    bool
}

type session struct {
	mu       sync.Mutex
	snapshot entity.CartSnapshot
	isOpen   bool
	paying   bool // hay un pago en curso para este carrito
	lastSeen time.Time
}

// SessionStore contenedor explícito de carritos, uno por sesión. Se construye en main
// y se inyecta; no hay estado global.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSessionStore crea el contenedor. ttl <= 0 usa DefaultSessionTTL.
func NewSessionStore(ttl time.Duration, log zerolog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		log:      log.With().Str("component", "cart_sessions").Logger(),
	}
}

// Open crea una sesión con el carrito vacío y cerrado.
func (s *SessionStore) Open() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = &session{snapshot: entity.EmptyCart(), lastSeen: s.now()}
	s.mu.Unlock()
	s.log.Debug().Str("session_id", id).Msg("sesión abierta")
	return id
}

// Close descarta la sesión y su carrito.
func (s *SessionStore) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.log.Debug().Str("session_id", id).Msg("sesión cerrada")
	return nil
}

func (s *SessionStore) get(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Dispatch aplica op sobre el último snapshot confirmado de la sesión y lo reemplaza.
// Las operaciones de una misma sesión se aplican una a una en orden de llegada.
// Si op falla el snapshot vigente no cambia y se devuelve junto con el error.
func (s *SessionStore) Dispatch(id string, op engine.Operation) (entity.CartSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return entity.CartSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = s.now()
	next, err := op(sess.snapshot)
	if err != nil {
		return sess.snapshot, err
	}
	sess.snapshot = next
	return next, nil
}

// BeginCheckout reserva el carrito para un pago y devuelve el snapshot a cobrar.
// Mientras la reserva siga vigente un segundo intento recibe domain.ErrCheckoutInProgress.
// El llamador debe liberar la reserva con EndCheckout.
func (s *SessionStore) BeginCheckout(id string) (entity.CartSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return entity.CartSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.paying {
		return entity.CartSnapshot{}, domain.ErrCheckoutInProgress
	}
	sess.paying = true
	sess.lastSeen = s.now()
	return sess.snapshot, nil
}

// EndCheckout libera la reserva de pago. Es idempotente y tolera sesiones ya cerradas.
func (s *SessionStore) EndCheckout(id string) {
	sess, err := s.get(id)
	if err != nil {
		return
	}
	sess.mu.Lock()
	sess.paying = false
	sess.mu.Unlock()
}

// Snapshot devuelve el snapshot vigente. Es inmutable: el llamador puede conservarlo.
func (s *SessionStore) Snapshot(id string) (entity.CartSnapshot, error) {
	st, err := s.State(id)
	if err != nil {
		return entity.CartSnapshot{}, err
	}
	return st.Snapshot, nil
}

// State devuelve snapshot y bandera de apertura en una sola lectura consistente.
func (s *SessionStore) State(id string) (State, error) {
	sess, err := s.get(id)
	if err != nil {
		return State{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	return State{SessionID: id, Snapshot: sess.snapshot, IsOpen: sess.isOpen}, nil
}

// OpenCart marca el panel del carrito como visible.
func (s *SessionStore) OpenCart(id string) (State, error) { return s.setOpen(id, true) }

// CloseCart marca el panel del carrito como oculto.
func (s *SessionStore) CloseCart(id string) (State, error) { return s.setOpen(id, false) }

func (s *SessionStore) setOpen(id string, open bool) (State, error) {
	sess, err := s.get(id)
	if err != nil {
		return State{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.isOpen = open
	sess.lastSeen = s.now()
	return State{SessionID: id, Snapshot: sess.snapshot, IsOpen: open}, nil
}

// SweepExpired elimina las sesiones sin actividad desde hace más de ttl y devuelve cuántas.
func (s *SessionStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()
		if idle > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Int("active", len(s.sessions)).Msg("sesiones expiradas eliminadas")
	}
	return removed
}

// Len número de sesiones activas.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
