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
	"github.com/jhoicas/gapc-api/pkg/docid"
	"github.com/jhoicas/gapc-api/pkg/textnorm"
)

// DirectiveUseCase gestiona la junta directiva de los grupos.
// PRESIDENTE, SECRETARIO y TESORERO son únicos por grupo; VOCAL puede repetirse.
type DirectiveUseCase struct {
	members repository.DirectiveRepository
	groups  repository.GroupRepository
}

// NewDirectiveUseCase construye el caso de uso.
func NewDirectiveUseCase(members repository.DirectiveRepository, groups repository.GroupRepository) *DirectiveUseCase {
	return &DirectiveUseCase{members: members, groups: groups}
}

// Add agrega un integrante a la junta del grupo. domain.ErrNotFound si el grupo no existe o no es visible,
// domain.ErrConflict si el cargo único ya está ocupado.
func (uc *DirectiveUseCase) Add(ctx context.Context, scope rbac.Identity, groupID string, in dto.CreateDirectiveMemberRequest) (*dto.DirectiveMemberResponse, error) {
	if err := uc.checkGroup(ctx, scope, groupID); err != nil {
		return nil, err
	}
	member, err := newDirectiveMember(groupID, in, time.Now())
	if err != nil {
		return nil, err
	}
	current, err := uc.members.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := checkUniquePositions(append(current, member)); err != nil {
		return nil, err
	}
	if err := uc.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return toDirectiveMemberResponse(member), nil
}

// ListByGroup lista la junta directiva de un grupo visible para la sesión.
func (uc *DirectiveUseCase) ListByGroup(ctx context.Context, scope rbac.Identity, groupID string) ([]dto.DirectiveMemberResponse, error) {
	if err := uc.checkGroup(ctx, scope, groupID); err != nil {
		return nil, err
	}
	list, err := uc.members.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DirectiveMemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toDirectiveMemberResponse(m))
	}
	return out, nil
}

// Update modifica un integrante. (nil, nil) si no existe o su grupo está fuera de alcance.
func (uc *DirectiveUseCase) Update(ctx context.Context, scope rbac.Identity, id string, in dto.UpdateDirectiveMemberRequest) (*dto.DirectiveMemberResponse, error) {
	member, err := uc.visibleMember(ctx, scope, id)
	if err != nil || member == nil {
		return nil, err
	}
	if in.FullName != nil {
		name := textnorm.Clean(*in.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full_name no puede quedar vacío", domain.ErrInvalidInput)
		}
		member.FullName = name
	}
	if in.Position != nil {
		pos, err := entity.ParsePosition(*in.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if pos != member.Position {
			current, err := uc.members.ListByGroup(ctx, member.GroupID)
			if err != nil {
				return nil, err
			}
			others := make([]*entity.DirectiveMember, 0, len(current))
			for _, m := range current {
				if m.ID != member.ID {
					others = append(others, m)
				}
			}
			member.Position = pos
			if err := checkUniquePositions(append(others, member)); err != nil {
				return nil, err
			}
		}
	}
	if in.Phone != nil {
		member.Phone = textnorm.Clean(*in.Phone)
	}
	if in.ElectedAt != nil {
		member.ElectedAt = in.ElectedAt
	}
	member.UpdatedAt = time.Now()
	if err := uc.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return toDirectiveMemberResponse(member), nil
}

// Remove elimina un integrante de la junta.
func (uc *DirectiveUseCase) Remove(ctx context.Context, scope rbac.Identity, id string) error {
	member, err := uc.visibleMember(ctx, scope, id)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrNotFound
	}
	return uc.members.Delete(ctx, id)
}

func (uc *DirectiveUseCase) checkGroup(ctx context.Context, scope rbac.Identity, groupID string) error {
	group, err := uc.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil || !groupVisible(scope, group) {
		return fmt.Errorf("%w: grupo no encontrado", domain.ErrNotFound)
	}
	return nil
}

func (uc *DirectiveUseCase) visibleMember(ctx context.Context, scope rbac.Identity, id string) (*entity.DirectiveMember, error) {
	member, err := uc.members.GetByID(ctx, id)
	if err != nil || member == nil {
		return nil, err
	}
	group, err := uc.groups.GetByID(ctx, member.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil || !groupVisible(scope, group) {
		return nil, nil
	}
	return member, nil
}

func newDirectiveMember(groupID string, in dto.CreateDirectiveMemberRequest, now time.Time) (*entity.DirectiveMember, error) {
	pos, err := entity.ParsePosition(in.Position)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := docid.ValidateNationalID(in.NationalID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	name := textnorm.Clean(in.FullName)
	if name == "" {
		return nil, fmt.Errorf("%w: full_name es requerido", domain.ErrInvalidInput)
	}
	return &entity.DirectiveMember{
		ID:         uuid.New().String(),
		GroupID:    groupID,
		FullName:   name,
		NationalID: docid.NormalizeNationalID(in.NationalID),
		Position:   pos,
		Phone:      textnorm.Clean(in.Phone),
		ElectedAt:  in.ElectedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// checkUniquePositions valida que ningún cargo único ni documento se repita dentro de la junta.
func checkUniquePositions(board []*entity.DirectiveMember) error {
	positions := make(map[entity.Position]bool, len(board))
	docs := make(map[string]bool, len(board))
	for _, m := range board {
		if m.Position.Unique() {
			if positions[m.Position] {
				return fmt.Errorf("%w: el cargo %s ya está ocupado", domain.ErrConflict, m.Position)
			}
			positions[m.Position] = true
		}
		if docs[m.NationalID] {
			return fmt.Errorf("%w: el documento ya forma parte de la junta", domain.ErrConflict)
		}
		docs[m.NationalID] = true
	}
	return nil
}

func toDirectiveMemberResponse(m *entity.DirectiveMember) *dto.DirectiveMemberResponse {
	if m == nil {
		return nil
	}
	return &dto.DirectiveMemberResponse{
		ID:         m.ID,
		GroupID:    m.GroupID,
		FullName:   m.FullName,
		NationalID: m.NationalID,
		Position:   string(m.Position),
		Phone:      m.Phone,
		ElectedAt:  m.ElectedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
