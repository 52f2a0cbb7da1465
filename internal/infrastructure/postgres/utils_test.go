package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gapc-api/internal/domain"
)

func TestMapWriteError(t *testing.T) {
	unique := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	other := errors.New("conexión cerrada")

	assert.ErrorIs(t, mapWriteError("insert district", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, mapWriteError("delete district", fk), domain.ErrConflict)

	err := mapWriteError("insert user", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "insert user")
}

func TestWrapError_TransporteEsAlmacenNoDisponible(t *testing.T) {
	unavailable := []error{
		&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
		fmt.Errorf("query: %w", context.DeadlineExceeded),
		&pgconn.PgError{Code: "08006"},
		&pgconn.PgError{Code: "57P01"},
		&pgconn.PgError{Code: "53300"},
	}
	for _, cause := range unavailable {
		err := wrapError("list districts", cause)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable, cause.Error())
		assert.ErrorIs(t, err, cause)
	}

	for _, cause := range []error{&pgconn.PgError{Code: "42P01"}, errors.New("columna inválida")} {
		assert.NotErrorIs(t, wrapError("list districts", cause), domain.ErrStoreUnavailable)
	}
}

func TestMapWriteError_ConexionCaida(t *testing.T) {
	err := mapWriteError("insert user", &net.OpError{Op: "write", Net: "tcp", Err: errors.New("broken pipe")})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestNullable(t *testing.T) {
	empty, id := "", "d-1"
	assert.Nil(t, nullable(nil))
	assert.Nil(t, nullable(&empty))
	assert.Equal(t, &id, nullable(&id))
}
