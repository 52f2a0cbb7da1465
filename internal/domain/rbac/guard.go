package rbac

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// DenyReason motivo de una denegación. No identifica qué permiso faltó.
type DenyReason int

const (
	ReasonNone DenyReason = iota
	ReasonNotAuthenticated
	ReasonMissingPermission
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNotAuthenticated:
		return "not_authenticated"
	case ReasonMissingPermission:
		return "missing_permission"
	default:
		return "none"
	}
}

// Decision resultado de Authorize.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Err devuelve nil si se permitió, o el error de dominio equivalente al motivo.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonNotAuthenticated {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrMissingPermission
}

// Authorize decide si la sesión puede ejecutar una operación que exige todos los permisos de required.
// Una lista vacía siempre autoriza.
func Authorize(s *Session, required ...entity.Permission) Decision {
	if len(required) == 0 {
		return Decision{Allowed: true}
	}
	if !s.Authenticated() {
		return Decision{Reason: ReasonNotAuthenticated}
	}
	for _, p := range required {
		if !s.permissions.Has(p) {
			return Decision{Reason: ReasonMissingPermission}
		}
	}
	return Decision{Allowed: true}
}

// Operation operación protegida que recibe la sesión explícitamente.
type Operation[T any] func(ctx context.Context, s *Session) (T, error)

// Guard envuelve op: ejecuta Authorize y solo invoca op si la decisión es Allowed.
func Guard[T any](op Operation[T], required ...entity.Permission) Operation[T] {
	perms := append([]entity.Permission(nil), required...)
	return func(ctx context.Context, s *Session) (T, error) {
		if err := Authorize(s, perms...).Err(); err != nil {
			var zero T
			return zero, err
		}
		return op(ctx, s)
	}
}
