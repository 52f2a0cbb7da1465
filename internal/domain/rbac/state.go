package rbac

import "sync"

// State contenedor de la sesión activa de una conexión de usuario.
// Get antes de cualquier Set, o después de Clear, devuelve una sesión anónima.
type State struct {
	mu      sync.RWMutex
	current *Session
}

// NewState crea un contenedor vacío.
func NewState() *State {
	return &State{}
}

// Set reemplaza atómicamente la sesión anterior.
func (st *State) Set(s *Session) {
	st.mu.Lock()
	st.current = s
	st.mu.Unlock()
}

// Get devuelve la sesión actual.
func (st *State) Get() *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.current == nil {
		return Anonymous()
	}
	return st.current
}

// Clear vuelve al estado anónimo (logout).
func (st *State) Clear() {
	st.Set(nil)
}
