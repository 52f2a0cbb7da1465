package usecase

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

// GroupTxRunner ejecuta fn dentro de una transacción con repositorios de grupo y junta directiva atados a ella.
type GroupTxRunner interface {
	RunGroup(ctx context.Context, fn func(
		groups repository.GroupRepository,
		directive repository.DirectiveRepository,
	) error) error
}

// PasswordHasher genera el hash almacenable de una contraseña.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}
