package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Env: "production", Level: "info"}, &buf)
	l.Component("auth").Info().Str("reason", "user_not_found").Msg("login rechazado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "auth", entry["component"])
	assert.Equal(t, "user_not_found", entry["reason"])
	assert.Equal(t, "login rechazado", entry["message"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Env: "production", Level: "warn"}, &buf)
	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())
}

func TestNop_NoPanica(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("descartado") })
}

func TestNew_ServicioYNivelDesconocido(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Env: "production", Level: "VERBOSO", Service: "gapc-api"}, &buf)
	l.Debug().Msg("debajo de info")
	assert.Zero(t, buf.Len(), "un nivel desconocido cae a info")

	l.Info().Msg("visible")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gapc-api", entry["service"])
}
