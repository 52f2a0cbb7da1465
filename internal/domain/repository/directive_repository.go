package repository

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// DirectiveRepository define el puerto de persistencia para la junta directiva de los grupos.
type DirectiveRepository interface {
	Create(ctx context.Context, member *entity.DirectiveMember) error
	GetByID(ctx context.Context, id string) (*entity.DirectiveMember, error)
	Update(ctx context.Context, member *entity.DirectiveMember) error
	ListByGroup(ctx context.Context, groupID string) ([]*entity.DirectiveMember, error)
	Delete(ctx context.Context, id string) error
}
