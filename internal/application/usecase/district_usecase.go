package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
	"github.com/jhoicas/gapc-api/pkg/textnorm"
)

// DistrictUseCase casos de uso CRUD para distritos.
type DistrictUseCase struct {
	repo repository.DistrictRepository
}

// NewDistrictUseCase construye el caso de uso.
func NewDistrictUseCase(repo repository.DistrictRepository) *DistrictUseCase {
	return &DistrictUseCase{repo: repo}
}

// Create crea un distrito. Devuelve domain.ErrDuplicate si ya existe uno con el mismo nombre
// ignorando tildes y mayúsculas.
func (uc *DistrictUseCase) Create(ctx context.Context, in dto.CreateDistrictRequest) (*dto.DistrictResponse, error) {
	name := textnorm.Clean(in.Name)
	key := textnorm.Key(name)
	if key == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByNameKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	district := &entity.District{
		ID:           uuid.New().String(),
		Name:         name,
		NameKey:      key,
		Municipality: textnorm.Clean(in.Municipality),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, district); err != nil {
		return nil, err
	}
	return toDistrictResponse(district), nil
}

// GetByID obtiene un distrito por ID. (nil, nil) si no existe.
func (uc *DistrictUseCase) GetByID(ctx context.Context, id string) (*dto.DistrictResponse, error) {
	district, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDistrictResponse(district), nil
}

// Update actualiza un distrito. (nil, nil) si no existe.
func (uc *DistrictUseCase) Update(ctx context.Context, id string, in dto.UpdateDistrictRequest) (*dto.DistrictResponse, error) {
	district, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := textnorm.Clean(*in.Name)
		key := textnorm.Key(name)
		if key == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		if key != district.NameKey {
			other, err := uc.repo.GetByNameKey(ctx, key)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != district.ID {
				return nil, domain.ErrDuplicate
			}
		}
		district.Name = name
		district.NameKey = key
	}
	if in.Municipality != nil {
		district.Municipality = textnorm.Clean(*in.Municipality)
	}
	district.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, district); err != nil {
		return nil, err
	}
	return toDistrictResponse(district), nil
}

// List lista distritos con paginación.
func (uc *DistrictUseCase) List(ctx context.Context, limit, offset int) (*dto.DistrictListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DistrictResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDistrictResponse(d))
	}
	return &dto.DistrictListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Count: len(items)},
	}, nil
}

// Delete elimina un distrito por ID.
func (uc *DistrictUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toDistrictResponse(d *entity.District) *dto.DistrictResponse {
	if d == nil {
		return nil
	}
	return &dto.DistrictResponse{
		ID:           d.ID,
		Name:         d.Name,
		Municipality: d.Municipality,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
