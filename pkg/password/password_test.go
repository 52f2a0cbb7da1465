package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gapc-api/pkg/password"
)

func TestBcrypt_HashYVerify(t *testing.T) {
	h := password.NewBcrypt(bcrypt.MinCost)
	hash, err := h.Hash("clave-segura")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-segura", hash)

	assert.True(t, h.Verify("clave-segura", hash))
	assert.False(t, h.Verify("otra-clave", hash))
	assert.False(t, h.Verify("", hash))
}

func TestBcrypt_HashSalado(t *testing.T) {
	h := password.NewBcrypt(bcrypt.MinCost)
	a, err := h.Hash("misma")
	require.NoError(t, err)
	b, err := h.Hash("misma")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "dos hashes de la misma clave deben diferir por la sal")
}

func TestBcrypt_HashMalformadoNoPanica(t *testing.T) {
	h := password.NewBcrypt(0)
	assert.False(t, h.Verify("x", "no-es-un-hash"))
	assert.False(t, h.Verify("x", ""))
}

func TestBcrypt_HashVacioRechazado(t *testing.T) {
	_, err := password.NewBcrypt(bcrypt.MinCost).Hash("")
	assert.Error(t, err)
}
