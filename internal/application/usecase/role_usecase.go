package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

// RoleUseCase consulta y edita el mapeo rol→permisos.
type RoleUseCase struct {
	repo repository.RolePermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RolePermissionRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List devuelve todos los roles con su alcance y permisos ordenados.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles := entity.Roles()
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		perms, err := uc.repo.PermissionsForRole(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, toRoleResponse(r, perms))
	}
	return out, nil
}

// Replace reemplaza los permisos de un rol. Solo acepta nombres del catálogo; el cambio aplica a sesiones nuevas.
func (uc *RoleUseCase) Replace(ctx context.Context, rawRole string, in dto.ReplaceRolePermissionsRequest) (*dto.RoleResponse, error) {
	role, err := entity.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	set := rbac.NewPermissionSet()
	for _, name := range in.Permissions {
		p := entity.Permission(name)
		if !entity.IsCataloged(p) {
			return nil, fmt.Errorf("%w: permiso desconocido %q", domain.ErrInvalidInput, name)
		}
		set[p] = struct{}{}
	}
	perms := set.Sorted()
	if err := uc.repo.ReplacePermissions(ctx, role, perms); err != nil {
		return nil, err
	}
	resp := toRoleResponse(role, perms)
	return &resp, nil
}

func toRoleResponse(r entity.Role, perms []entity.Permission) dto.RoleResponse {
	names := make([]string, 0, len(perms))
	for _, p := range rbac.NewPermissionSet(perms...).Sorted() {
		names = append(names, string(p))
	}
	return dto.RoleResponse{Role: r.String(), Scope: r.Scope().String(), Permissions: names}
}
