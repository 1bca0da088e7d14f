package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("ruidoso"))
}

func TestNew_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "restaurante-api", Out: &buf})

	l.Named("catalogos").Info().Str("kind", "grupos").Msg("creado")
	l.Debug().Msg("no debe salir")

	var evt map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &evt))
	assert.Equal(t, "restaurante-api", evt["service"])
	assert.Equal(t, "catalogos", evt["component"])
	assert.Equal(t, "grupos", evt["kind"])
	assert.Equal(t, "creado", evt["message"])
}
