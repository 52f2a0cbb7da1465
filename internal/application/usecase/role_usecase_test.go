package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

func TestRole_ListIncluyeRolesSinPermisos(t *testing.T) {
	s := newMemStore()
	s.rolePerms[entity.RoleAdmin] = []entity.Permission{entity.PermUserRead, entity.PermDistrictRead}
	uc := usecase.NewRoleUseCase(rolePermRepo{s})

	roles, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "ADMIN", roles[0].Role)
	assert.Equal(t, "none", roles[0].Scope)
	assert.Equal(t, []string{"district.read", "user.read"}, roles[0].Permissions)
	assert.Equal(t, "DIRECTIVE", roles[1].Role)
	assert.Empty(t, roles[1].Permissions)
	assert.Equal(t, "district", roles[2].Scope)
}

func TestRole_ReplaceSoloAceptaCatalogo(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewRoleUseCase(rolePermRepo{s})
	ctx := context.Background()

	_, err := uc.Replace(ctx, "PROMOTER", dto.ReplaceRolePermissionsRequest{Permissions: []string{"group.read", "*"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.rolePerms[entity.RolePromoter], "un permiso inválido no reemplaza nada")

	_, err = uc.Replace(ctx, "CAJERO", dto.ReplaceRolePermissionsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Replace(ctx, "promoter", dto.ReplaceRolePermissionsRequest{Permissions: []string{"group.read", "district.read", "group.read"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"district.read", "group.read"}, out.Permissions)
	assert.Equal(t, []entity.Permission{entity.PermDistrictRead, entity.PermGroupRead}, s.rolePerms[entity.RolePromoter])

	out, err = uc.Replace(ctx, "PROMOTER", dto.ReplaceRolePermissionsRequest{Permissions: []string{}})
	require.NoError(t, err)
	assert.Empty(t, out.Permissions)
}
