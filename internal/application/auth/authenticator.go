package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/pkg/docid"
)

// Authenticator verifica credenciales contra el almacén y construye la sesión autenticada.
// No reintenta ante fallos del almacén.
type Authenticator struct {
	users     UserFinder
	perms     PermissionResolver
	verifier  SecretVerifier
	decoyHash string
}

// AuthenticatorOption configura el Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithDecoyHash fija un hash (del mismo costo que los almacenados) contra el que se compara el
// secreto cuando el usuario no existe, para que ese caso tarde lo mismo que un secreto incorrecto.
func WithDecoyHash(hash string) AuthenticatorOption {
	return func(a *Authenticator) { a.decoyHash = hash }
}

// NewAuthenticator construye el autenticador con sus colaboradores.
func NewAuthenticator(users UserFinder, perms PermissionResolver, verifier SecretVerifier, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{users: users, perms: perms, verifier: verifier}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate valida loginID (email o documento) y secret. Errores posibles:
// domain.ErrUserNotFound, domain.ErrInactiveAccount, domain.ErrInvalidCredential, domain.ErrStoreUnavailable.
func (a *Authenticator) Authenticate(ctx context.Context, loginID, secret string) (*rbac.Session, error) {
	user, err := a.lookup(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) && a.decoyHash != "" {
			_ = a.verifier.Verify(secret, a.decoyHash)
		}
		return nil, err
	}
	// La cuenta inactiva corta antes de tocar el hash.
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	if secret == "" || !a.verifier.Verify(secret, user.PasswordHash) {
		return nil, domain.ErrInvalidCredential
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: rol %q fuera de la enumeración", domain.ErrInvalidCredential, user.Role)
	}

	perms, err := a.perms.PermissionsForRole(ctx, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: permisos del rol %s: %v", domain.ErrStoreUnavailable, user.Role, err)
	}

	identity := rbac.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}
	if user.DistrictID != nil {
		identity.DistrictID = *user.DistrictID
	}
	if user.GroupID != nil {
		identity.GroupID = *user.GroupID
	}
	return rbac.NewAuthenticated(identity, perms), nil
}

func (a *Authenticator) lookup(ctx context.Context, loginID string) (*entity.User, error) {
	id, kind := docid.NormalizeLogin(loginID)
	var (
		user *entity.User
		err  error
	)
	switch kind {
	case docid.KindEmail:
		user, err = a.users.GetByEmail(ctx, id)
	case docid.KindNationalID:
		user, err = a.users.GetByNationalID(ctx, id)
	default:
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: buscar usuario: %v", domain.ErrStoreUnavailable, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
