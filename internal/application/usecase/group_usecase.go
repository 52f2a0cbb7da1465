package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
	"github.com/jhoicas/gapc-api/pkg/textnorm"
)

// GroupUseCase casos de uso para grupos GAPC. Las lecturas se limitan al alcance de la sesión.
type GroupUseCase struct {
	tx        GroupTxRunner
	groups    repository.GroupRepository
	districts repository.DistrictRepository
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(tx GroupTxRunner, groups repository.GroupRepository, districts repository.DistrictRepository) *GroupUseCase {
	return &GroupUseCase{tx: tx, groups: groups, districts: districts}
}

// Create crea un grupo en un distrito existente y, si viene Board, su junta directiva en la misma transacción.
// Un promotor solo puede crear grupos en su distrito.
func (uc *GroupUseCase) Create(ctx context.Context, scope rbac.Identity, in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if scope.Role.Scope() == entity.ScopeDistrict && in.DistrictID != scope.DistrictID {
		return nil, domain.ErrMissingPermission
	}
	if scope.Role.Scope() == entity.ScopeGroup {
		return nil, domain.ErrMissingPermission
	}
	district, err := uc.districts.GetByID(ctx, in.DistrictID)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, fmt.Errorf("%w: el distrito no existe", domain.ErrNotFound)
	}

	now := time.Now()
	group := &entity.Group{
		ID:         uuid.New().String(),
		DistrictID: district.ID,
		Name:       textnorm.Clean(in.Name),
		Community:  textnorm.Clean(in.Community),
		FoundedAt:  in.FoundedAt,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	board := make([]*entity.DirectiveMember, 0, len(in.Board))
	for _, m := range in.Board {
		member, err := newDirectiveMember(group.ID, m, now)
		if err != nil {
			return nil, err
		}
		board = append(board, member)
	}
	if err := checkUniquePositions(board); err != nil {
		return nil, err
	}

	err = uc.tx.RunGroup(ctx, func(groups repository.GroupRepository, directive repository.DirectiveRepository) error {
		if err := groups.Create(ctx, group); err != nil {
			return err
		}
		for _, m := range board {
			if err := directive.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toGroupResponse(group)
	for _, m := range board {
		out.Board = append(out.Board, *toDirectiveMemberResponse(m))
	}
	return out, nil
}

// GetByID obtiene un grupo. Fuera del alcance de la sesión se comporta como inexistente: (nil, nil).
func (uc *GroupUseCase) GetByID(ctx context.Context, scope rbac.Identity, id string) (*dto.GroupResponse, error) {
	group, err := uc.visible(ctx, scope, id)
	if err != nil || group == nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// List lista grupos. districtID filtra opcionalmente; un promotor siempre ve solo su distrito y una
// directiva solo su grupo.
func (uc *GroupUseCase) List(ctx context.Context, scope rbac.Identity, districtID string, limit, offset int) (*dto.GroupListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	var list []*entity.Group
	switch scope.Role.Scope() {
	case entity.ScopeGroup:
		g, err := uc.groups.GetByID(ctx, scope.GroupID)
		if err != nil {
			return nil, err
		}
		if g != nil && offset == 0 && (districtID == "" || districtID == g.DistrictID) {
			list = append(list, g)
		}
	case entity.ScopeDistrict:
		if districtID != "" && districtID != scope.DistrictID {
			break
		}
		var err error
		list, err = uc.groups.List(ctx, scope.DistrictID, limit, offset)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		list, err = uc.groups.List(ctx, districtID, limit, offset)
		if err != nil {
			return nil, err
		}
	}
	items := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGroupResponse(g))
	}
	return &dto.GroupListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Count: len(items)},
	}, nil
}

// Update actualiza un grupo visible para la sesión. (nil, nil) si no existe o está fuera de alcance.
func (uc *GroupUseCase) Update(ctx context.Context, scope rbac.Identity, id string, in dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := uc.visible(ctx, scope, id)
	if err != nil || group == nil {
		return nil, err
	}
	if in.Name != nil {
		name := textnorm.Clean(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		group.Name = name
	}
	if in.Community != nil {
		group.Community = textnorm.Clean(*in.Community)
	}
	if in.FoundedAt != nil {
		group.FoundedAt = in.FoundedAt
	}
	if in.Active != nil {
		group.Active = *in.Active
	}
	group.UpdatedAt = time.Now()
	if err := uc.groups.Update(ctx, group); err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// Delete elimina un grupo visible para la sesión.
func (uc *GroupUseCase) Delete(ctx context.Context, scope rbac.Identity, id string) error {
	group, err := uc.visible(ctx, scope, id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	return uc.groups.Delete(ctx, id)
}

func (uc *GroupUseCase) visible(ctx context.Context, scope rbac.Identity, id string) (*entity.Group, error) {
	group, err := uc.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil || !groupVisible(scope, group) {
		return nil, nil
	}
	return group, nil
}

func toGroupResponse(g *entity.Group) *dto.GroupResponse {
	if g == nil {
		return nil
	}
	return &dto.GroupResponse{
		ID:         g.ID,
		DistrictID: g.DistrictID,
		Name:       g.Name,
		Community:  g.Community,
		FoundedAt:  g.FoundedAt,
		Active:     g.Active,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
