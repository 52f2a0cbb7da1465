package repository

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// GroupRepository define el puerto de persistencia para Group.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	Update(ctx context.Context, group *entity.Group) error
	// List filtra por distrito si districtID no está vacío.
	List(ctx context.Context, districtID string, limit, offset int) ([]*entity.Group, error)
	Delete(ctx context.Context, id string) error
}
