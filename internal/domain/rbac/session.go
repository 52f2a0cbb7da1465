// Package rbac contiene el núcleo de control de acceso: la sesión autenticada, el contenedor de estado
// por conexión y el guard que autoriza operaciones protegidas.
package rbac

import (
	"sort"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// Identity instantánea del usuario autenticado que viaja en la sesión.
type Identity struct {
	UserID     string
	Name       string
	Role       entity.Role
	DistrictID string
	GroupID    string
}

// ScopeID devuelve el distrito o grupo al que queda limitada la sesión según el rol.
func (i Identity) ScopeID() string {
	switch i.Role.Scope() {
	case entity.ScopeDistrict:
		return i.DistrictID
	case entity.ScopeGroup:
		return i.GroupID
	}
	return ""
}

// PermissionSet conjunto de permisos sin orden ni duplicados.
type PermissionSet map[entity.Permission]struct{}

// NewPermissionSet construye un conjunto propio a partir de la lista (ignora vacíos).
func NewPermissionSet(perms ...entity.Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// Has informa si el permiso está en el conjunto.
func (s PermissionSet) Has(p entity.Permission) bool {
	_, ok := s[p]
	return ok
}

// Sorted devuelve los permisos ordenados alfabéticamente.
func (s PermissionSet) Sorted() []entity.Permission {
	out := make([]entity.Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Session estado efímero de un actor. Es inmutable: el único camino a una sesión autenticada es
// NewAuthenticated. Un *Session nil se comporta como Anonymous.
type Session struct {
	authenticated bool
	identity      Identity
	permissions   PermissionSet
}

// Anonymous devuelve una sesión sin autenticar y sin permisos.
func Anonymous() *Session {
	return &Session{permissions: PermissionSet{}}
}

// NewAuthenticated construye una sesión autenticada. Los permisos se copian a un conjunto nuevo.
func NewAuthenticated(identity Identity, perms []entity.Permission) *Session {
	return &Session{
		authenticated: true,
		identity:      identity,
		permissions:   NewPermissionSet(perms...),
	}
}

// Authenticated informa si la sesión pasó por el autenticador.
func (s *Session) Authenticated() bool {
	return s != nil && s.authenticated
}

// Identity devuelve la identidad (vacía si la sesión no está autenticada).
func (s *Session) Identity() Identity {
	if !s.Authenticated() {
		return Identity{}
	}
	return s.identity
}

// HasPermission informa si la sesión autenticada tiene el permiso.
func (s *Session) HasPermission(p entity.Permission) bool {
	if !s.Authenticated() {
		return false
	}
	return s.permissions.Has(p)
}

// Permissions devuelve una copia ordenada de los permisos.
func (s *Session) Permissions() []entity.Permission {
	if !s.Authenticated() {
		return []entity.Permission{}
	}
	return s.permissions.Sorted()
}
