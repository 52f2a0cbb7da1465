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
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

func ptr(s string) *string { return &s }

func TestUser_CreateNormalizaYHashea(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewUserUseCase(userRepo{s}, plainHasher{})

	u, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		Name:       "Marta  Gómez",
		Email:      " Marta@GAPC.org ",
		NationalID: "0123.4567-8",
		Password:   "secreto123",
		Role:       "promoter",
		DistrictID: ptr("d-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "marta@gapc.org", u.Email)
	assert.Equal(t, "012345678", u.NationalID)
	assert.Equal(t, "PROMOTER", u.Role)
	assert.True(t, u.Active)
	assert.Equal(t, "hash:secreto123", s.users[u.ID].PasswordHash)
}

func TestUser_AlcancePorRol(t *testing.T) {
	uc := usecase.NewUserUseCase(userRepo{newMemStore()}, plainHasher{})
	ctx := context.Background()

	cases := []struct {
		name     string
		role     string
		district *string
		group    *string
		ok       bool
	}{
		{"promotor con distrito", "PROMOTER", ptr("d-1"), nil, true},
		{"promotor sin distrito", "PROMOTER", nil, nil, false},
		{"promotor con grupo", "PROMOTER", ptr("d-1"), ptr("g-1"), false},
		{"directiva con grupo", "DIRECTIVE", nil, ptr("g-1"), true},
		{"directiva sin grupo", "DIRECTIVE", nil, nil, false},
		{"admin sin alcance", "ADMIN", nil, nil, true},
		{"admin con distrito", "ADMIN", ptr("d-1"), nil, false},
		{"admin con distrito vacío", "ADMIN", ptr(""), nil, true},
		{"rol desconocido", "CAJERO", nil, nil, false},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, admin, dto.CreateUserRequest{
				Name:       "Usuario",
				NationalID: "1000000" + string(rune('0'+i)),
				Password:   "secreto123",
				Role:       tc.role,
				DistrictID: tc.district,
				GroupID:    tc.group,
			})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}

func TestUser_Duplicados(t *testing.T) {
	uc := usecase.NewUserUseCase(userRepo{newMemStore()}, plainHasher{})
	ctx := context.Background()
	base := dto.CreateUserRequest{Name: "Ana", Email: "ana@gapc.org", NationalID: "12345678", Password: "secreto123", Role: "ADMIN"}
	_, err := uc.Create(ctx, admin, base)
	require.NoError(t, err)

	dupEmail := base
	dupEmail.Email, dupEmail.NationalID = "ANA@gapc.org", "87654321"
	_, err = uc.Create(ctx, admin, dupEmail)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	dupDoc := base
	dupDoc.Email, dupDoc.NationalID = "otra@gapc.org", "12.345.678"
	_, err = uc.Create(ctx, admin, dupDoc)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUser_UpdateCambiaRolYAlcance(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewUserUseCase(userRepo{s}, plainHasher{})
	ctx := context.Background()
	u, err := uc.Create(ctx, admin, dto.CreateUserRequest{Name: "Ana", Email: "ana@gapc.org", Password: "secreto123", Role: "PROMOTER", DistrictID: ptr("d-1")})
	require.NoError(t, err)

	_, err = uc.Update(ctx, admin, u.ID, dto.UpdateUserRequest{Role: ptr("DIRECTIVE")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nuevo rol exige group_id")

	inactive := false
	upd, err := uc.Update(ctx, admin, u.ID, dto.UpdateUserRequest{Role: ptr("DIRECTIVE"), GroupID: ptr("g-1"), Active: &inactive, Password: ptr("otraClave99")})
	require.NoError(t, err)
	assert.Equal(t, "DIRECTIVE", upd.Role)
	assert.Nil(t, upd.DistrictID)
	assert.Equal(t, "g-1", *upd.GroupID)
	assert.False(t, upd.Active)
	assert.Equal(t, "hash:otraClave99", s.users[u.ID].PasswordHash)

	missing, err := uc.Update(ctx, admin, "no-existe", dto.UpdateUserRequest{Name: ptr("X")})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUser_ListYGetRespetanAlcance(t *testing.T) {
	uc := usecase.NewUserUseCase(userRepo{newMemStore()}, plainHasher{})
	ctx := context.Background()
	mk := func(name, email, role string, district, group *string) *dto.UserResponse {
		u, err := uc.Create(ctx, admin, dto.CreateUserRequest{Name: name, Email: email, Password: "secreto123", Role: role, DistrictID: district, GroupID: group})
		require.NoError(t, err)
		return u
	}
	mk("Ana", "ana@gapc.org", "PROMOTER", ptr("d-1"), nil)
	other := mk("Bea", "bea@gapc.org", "PROMOTER", ptr("d-2"), nil)
	mk("Carla", "carla@gapc.org", "ADMIN", nil, nil)

	all, err := uc.List(ctx, admin, repository.UserFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	admins, err := uc.List(ctx, admin, repository.UserFilter{Role: entity.RoleAdmin}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, admins.Items, 1)

	promoter := rbac.Identity{UserID: "p", Role: entity.RolePromoter, DistrictID: "d-1"}
	mine, err := uc.List(ctx, promoter, repository.UserFilter{DistrictID: "d-2"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, mine.Items, 1, "el filtro de distrito se fuerza al de la sesión")
	assert.Equal(t, "Ana", mine.Items[0].Name)

	hidden, err := uc.GetByID(ctx, promoter, other.ID)
	assert.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestUser_EscrituraRespetaAlcance(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewUserUseCase(userRepo{s}, plainHasher{})
	ctx := context.Background()
	mine, err := uc.Create(ctx, admin, dto.CreateUserRequest{Name: "Ana", Email: "ana@gapc.org", Password: "secreto123", Role: "PROMOTER", DistrictID: ptr("d-1")})
	require.NoError(t, err)
	other, err := uc.Create(ctx, admin, dto.CreateUserRequest{Name: "Bea", Email: "bea@gapc.org", Password: "secreto123", Role: "PROMOTER", DistrictID: ptr("d-2")})
	require.NoError(t, err)

	promoter := rbac.Identity{UserID: "p", Role: entity.RolePromoter, DistrictID: "d-1"}

	upd, err := uc.Update(ctx, promoter, other.ID, dto.UpdateUserRequest{Role: ptr("ADMIN")})
	assert.NoError(t, err)
	assert.Nil(t, upd, "un usuario de otro distrito se comporta como inexistente")
	assert.Equal(t, entity.RolePromoter, s.users[other.ID].Role)

	assert.ErrorIs(t, uc.Delete(ctx, promoter, other.ID), domain.ErrNotFound)
	assert.Contains(t, s.users, other.ID)

	_, err = uc.Update(ctx, promoter, mine.ID, dto.UpdateUserRequest{Role: ptr("ADMIN")})
	assert.ErrorIs(t, err, domain.ErrMissingPermission, "un promotor nunca asigna ADMIN")
	_, err = uc.Update(ctx, promoter, mine.ID, dto.UpdateUserRequest{DistrictID: ptr("d-2")})
	assert.ErrorIs(t, err, domain.ErrMissingPermission, "no puede mover el usuario a otro distrito")
	assert.Equal(t, "d-1", *s.users[mine.ID].DistrictID)

	name := "Ana María"
	renamed, err := uc.Update(ctx, promoter, mine.ID, dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, renamed.Name)
}

func TestUser_CreateConAlcance(t *testing.T) {
	uc := usecase.NewUserUseCase(userRepo{newMemStore()}, plainHasher{})
	ctx := context.Background()
	promoter := rbac.Identity{UserID: "p", Role: entity.RolePromoter, DistrictID: "d-1"}

	cases := []struct {
		name     string
		role     string
		district *string
		group    *string
		ok       bool
	}{
		{"promotor en su distrito", "PROMOTER", ptr("d-1"), nil, true},
		{"promotor en otro distrito", "PROMOTER", ptr("d-2"), nil, false},
		{"admin", "ADMIN", nil, nil, false},
		{"directiva", "DIRECTIVE", nil, ptr("g-1"), false},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, promoter, dto.CreateUserRequest{
				Name:       "Usuario",
				NationalID: "2000000" + string(rune('0'+i)),
				Password:   "secreto123",
				Role:       tc.role,
				DistrictID: tc.district,
				GroupID:    tc.group,
			})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrMissingPermission)
			}
		})
	}

	board := rbac.Identity{UserID: "d", Role: entity.RoleDirective, GroupID: "g-1"}
	_, err := uc.Create(ctx, board, dto.CreateUserRequest{Name: "Vocal", Email: "vocal@gapc.org", Password: "secreto123", Role: "DIRECTIVE", GroupID: ptr("g-1")})
	assert.NoError(t, err)
	_, err = uc.Create(ctx, board, dto.CreateUserRequest{Name: "Otro", Email: "otro@gapc.org", Password: "secreto123", Role: "DIRECTIVE", GroupID: ptr("g-2")})
	assert.ErrorIs(t, err, domain.ErrMissingPermission)
}
