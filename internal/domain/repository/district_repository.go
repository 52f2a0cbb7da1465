package repository

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// DistrictRepository define el puerto de persistencia para District.
type DistrictRepository interface {
	Create(ctx context.Context, district *entity.District) error
	GetByID(ctx context.Context, id string) (*entity.District, error)
	GetByNameKey(ctx context.Context, nameKey string) (*entity.District, error)
	Update(ctx context.Context, district *entity.District) error
	List(ctx context.Context, limit, offset int) ([]*entity.District, error)
	Delete(ctx context.Context, id string) error
}
