package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/domain"
)

func TestDistrict_NombreDuplicadoIgnoraTildesYMayusculas(t *testing.T) {
	uc := usecase.NewDistrictUseCase(districtRepo{newMemStore()})
	ctx := context.Background()

	d, err := uc.Create(ctx, dto.CreateDistrictRequest{Name: "  Villa   Rica ", Municipality: "Cauca"})
	require.NoError(t, err)
	assert.Equal(t, "Villa Rica", d.Name)

	_, err = uc.Create(ctx, dto.CreateDistrictRequest{Name: "VILLA RÍCA"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateDistrictRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDistrict_UpdateYList(t *testing.T) {
	uc := usecase.NewDistrictUseCase(districtRepo{newMemStore()})
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateDistrictRequest{Name: "Alto"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateDistrictRequest{Name: "Bajo"})
	require.NoError(t, err)

	name := "alto"
	_, err = uc.Update(ctx, b.ID, dto.UpdateDistrictRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	upd, err := uc.Update(ctx, a.ID, dto.UpdateDistrictRequest{Name: &name})
	require.NoError(t, err, "renombrar con la misma clave no es duplicado")
	assert.Equal(t, "alto", upd.Name)

	missing, err := uc.Update(ctx, "no-existe", dto.UpdateDistrictRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, missing)

	list, err := uc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 20, list.Page.Limit)

	require.NoError(t, uc.Delete(ctx, a.ID))
	got, err := uc.GetByID(ctx, a.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
