package repository

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get/Find devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// UserFilter filtros opcionales del listado de usuarios.
type UserFilter struct {
	Role       entity.Role
	DistrictID string
	GroupID    string
}
