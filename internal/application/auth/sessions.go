package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
)

// SessionRegistry guarda en memoria del proceso un rbac.State por conexión de usuario.
// Nada persiste entre reinicios; una entrada vencida se limpia al consultarla.
type SessionRegistry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	now     func() time.Time
}

type registryEntry struct {
	state     *rbac.State
	expiresAt time.Time
}

// RegistryOption configura el registro.
type RegistryOption func(*SessionRegistry)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) RegistryOption {
	return func(r *SessionRegistry) { r.now = now }
}

// NewSessionRegistry crea un registro vacío.
func NewSessionRegistry(opts ...RegistryOption) *SessionRegistry {
	r := &SessionRegistry{
		entries: make(map[string]*registryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open crea un State nuevo con la sesión y devuelve su id y vencimiento.
func (r *SessionRegistry) Open(s *rbac.Session, ttl time.Duration) (string, time.Time) {
	st := rbac.NewState()
	st.Set(s)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	id := uuid.New().String()
	expiresAt := r.now().Add(ttl)
	r.entries[id] = &registryEntry{state: st, expiresAt: expiresAt}
	return id, expiresAt
}

// Lookup devuelve el State de la sesión id, o false si no existe o venció.
func (r *SessionRegistry) Lookup(id string) (*rbac.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	if !r.now().Before(e.expiresAt) {
		e.state.Clear()
		delete(r.entries, id)
		return nil, false
	}
	return e.state, true
}

// Close limpia el State (logout) y elimina la entrada. Devuelve false si no existía.
func (r *SessionRegistry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	e.state.Clear()
	delete(r.entries, id)
	return true
}

// Len número de sesiones vigentes.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	return len(r.entries)
}

func (r *SessionRegistry) sweepLocked() {
	now := r.now()
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			e.state.Clear()
			delete(r.entries, id)
		}
	}
}
