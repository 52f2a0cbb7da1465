package auth

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// UserFinder busca la identidad por email o por documento. (nil, nil) si no existe.
// Lo implementa el repositorio de usuarios.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entity.User, error)
}

// PermissionResolver resuelve el conjunto de permisos de un rol.
type PermissionResolver interface {
	PermissionsForRole(ctx context.Context, role entity.Role) ([]entity.Permission, error)
}

// SecretVerifier compara una contraseña contra su hash almacenado (tiempo constante, salado).
type SecretVerifier interface {
	Verify(plaintext, storedHash string) bool
}

// LoginRecorder recibe el resultado de cada intento de login y el número de sesiones abiertas.
type LoginRecorder interface {
	RecordLogin(outcome string)
	SetActiveSessions(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordLogin(string)   {}
func (nopRecorder) SetActiveSessions(int) {}
