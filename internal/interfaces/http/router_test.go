package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gapc-api/internal/application/auth"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
	apphttp "github.com/jhoicas/gapc-api/internal/interfaces/http"
	"github.com/jhoicas/gapc-api/pkg/logger"
	"github.com/jhoicas/gapc-api/pkg/password"
)

type memDistricts struct {
	byID map[string]*entity.District
	err  error
}

var _ repository.DistrictRepository = (*memDistricts)(nil)

func (m *memDistricts) Create(_ context.Context, d *entity.District) error {
	m.byID[d.ID] = d
	return nil
}

func (m *memDistricts) GetByID(_ context.Context, id string) (*entity.District, error) {
	return m.byID[id], nil
}

func (m *memDistricts) GetByNameKey(_ context.Context, key string) (*entity.District, error) {
	for _, d := range m.byID {
		if d.NameKey == key {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDistricts) Update(_ context.Context, d *entity.District) error {
	m.byID[d.ID] = d
	return nil
}

func (m *memDistricts) List(_ context.Context, _, _ int) ([]*entity.District, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.District, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDistricts) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// newRouterEnv monta el Router completo; solo el caso de uso de distritos tiene almacén.
func newRouterEnv(t *testing.T) *testEnv {
	t.Helper()
	return newRouterEnvWith(t, &memDistricts{byID: map[string]*entity.District{}})
}

func newRouterEnvWith(t *testing.T, districts *memDistricts) *testEnv {
	t.Helper()
	hasher := password.NewBcrypt(4)
	hash, err := hasher.Hash(testPassword)
	require.NoError(t, err)
	users := &fakeUsers{users: []*entity.User{
		{ID: "u-admin", Name: "Ana", Email: "ana@gapc.org", PasswordHash: hash, Role: entity.RoleAdmin, Active: true},
		{ID: "u-dir", Name: "Rosa", Email: "rosa@gapc.org", PasswordHash: hash, Role: entity.RoleDirective, Active: true},
	}}
	perms := fakePerms{
		entity.RoleAdmin:     {entity.PermDistrictCreate, entity.PermDistrictRead, entity.PermDistrictDelete},
		entity.RoleDirective: {entity.PermGroupRead},
	}
	authUC := auth.NewAuthUseCase(auth.NewAuthenticator(users, perms, hasher), auth.NewSessionRegistry(), testTokens, logger.Nop(), nil)
	env := &testEnv{app: fiber.New(), users: users, dec: &decisions{}}
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:     authUC,
		DistrictUC: usecase.NewDistrictUseCase(districts),
		Decisions:  env.dec,
	})
	return env
}

func TestRouter_DistritosProtegidos(t *testing.T) {
	env := newRouterEnv(t)

	resp := env.do(t, http.MethodGet, "/api/districts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	directive := env.login(t, "rosa@gapc.org")
	resp = env.do(t, http.MethodPost, "/api/districts", directive, map[string]string{"name": "Norte"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := env.login(t, "ana@gapc.org")
	resp = env.do(t, http.MethodPost, "/api/districts", admin, map[string]string{"name": "Norte"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/districts", admin, map[string]string{"name": "NÓRTE"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "DUPLICATE")

	resp = env.do(t, http.MethodGet, "/api/districts/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/districts/"+created.ID, admin, map[string]string{"name": "Sur"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "district.update no está asignado")

	resp = env.do(t, http.MethodDelete, "/api/districts/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/districts/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/districts", admin, map[string]string{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "name exige al menos 2 caracteres")
}

func TestRouter_TodasLasRutasExigenSesion(t *testing.T) {
	env := newRouterEnv(t)
	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/groups"},
		{http.MethodPost, "/api/groups"},
		{http.MethodGet, "/api/groups/g-1/directive"},
		{http.MethodPut, "/api/directive/m-1"},
		{http.MethodDelete, "/api/directive/m-1"},
		{http.MethodGet, "/api/users"},
		{http.MethodDelete, "/api/users/u-1"},
		{http.MethodGet, "/api/roles"},
		{http.MethodPut, "/api/roles/ADMIN/permissions"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, r := range routes {
		resp := env.do(t, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", r.method, r.path)
	}
}

func TestRouter_AlmacenCaidoResponde503(t *testing.T) {
	districts := &memDistricts{byID: map[string]*entity.District{}}
	env := newRouterEnvWith(t, districts)
	admin := env.login(t, "ana@gapc.org")

	districts.err = fmt.Errorf("list districts: %w: dial tcp: connection refused", domain.ErrStoreUnavailable)
	resp := env.do(t, http.MethodGet, "/api/districts", admin, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "STORE_UNAVAILABLE")
}
