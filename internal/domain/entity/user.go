package entity

import (
	"errors"
	"time"
)

// User representa un usuario del programa GAPC (promotor, directiva o administrador).
type User struct {
	ID           string
	Name         string
	Email        string  // en minúsculas; puede estar vacío si el usuario entra con su documento
	NationalID   string  // solo dígitos
	PasswordHash string  // bcrypt hash, nunca vacío
	Role         Role
	DistrictID   *string // requerido para roles con ScopeDistrict
	GroupID      *string // requerido para roles con ScopeGroup
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidateScope verifica que las referencias de alcance coincidan con el ScopeKind del rol.
func (u *User) ValidateScope() error {
	if !u.Role.Valid() {
		return errors.New("rol desconocido")
	}
	hasDistrict := u.DistrictID != nil && *u.DistrictID != ""
	hasGroup := u.GroupID != nil && *u.GroupID != ""
	switch u.Role.Scope() {
	case ScopeDistrict:
		if !hasDistrict {
			return errors.New("el rol " + u.Role.String() + " requiere district_id")
		}
		if hasGroup {
			return errors.New("el rol " + u.Role.String() + " no admite group_id")
		}
	case ScopeGroup:
		if !hasGroup {
			return errors.New("el rol " + u.Role.String() + " requiere group_id")
		}
		if hasDistrict {
			return errors.New("el rol " + u.Role.String() + " no admite district_id")
		}
	case ScopeNone:
		if hasDistrict || hasGroup {
			return errors.New("el rol " + u.Role.String() + " no admite district_id ni group_id")
		}
	}
	return nil
}

// ScopeID devuelve el ID de distrito o grupo según el alcance del rol ("" si no aplica).
func (u *User) ScopeID() string {
	switch u.Role.Scope() {
	case ScopeDistrict:
		if u.DistrictID != nil {
			return *u.DistrictID
		}
	case ScopeGroup:
		if u.GroupID != nil {
			return *u.GroupID
		}
	}
	return ""
}
