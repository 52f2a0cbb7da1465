package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Role rol de un usuario. Enumeración cerrada: agregar un rol exige una constante y su entrada en roleScopes.
type Role string

const (
	RolePromoter  Role = "PROMOTER"
	RoleDirective Role = "DIRECTIVE"
	RoleAdmin     Role = "ADMIN"
)

// ScopeKind indica qué referencia de alcance (distrito o grupo) lleva un usuario según su rol.
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeDistrict
	ScopeGroup
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeDistrict:
		return "district"
	case ScopeGroup:
		return "group"
	default:
		return "none"
	}
}

var roleScopes = map[Role]ScopeKind{
	RolePromoter:  ScopeDistrict,
	RoleDirective: ScopeGroup,
	RoleAdmin:     ScopeNone,
}

// ParseRole convierte un string (sin distinguir mayúsculas) en Role. Rechaza valores desconocidos.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
	return r, nil
}

// Valid informa si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	_, ok := roleScopes[r]
	return ok
}

// Scope devuelve el tipo de alcance asociado al rol (ScopeNone si el rol no existe).
func (r Role) Scope() ScopeKind {
	return roleScopes[r]
}

func (r Role) String() string { return string(r) }

// Roles devuelve todos los roles conocidos, ordenados.
func Roles() []Role {
	out := make([]Role, 0, len(roleScopes))
	for r := range roleScopes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
