package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	id := Identidad{UserID: "u-1", Usuario: "ana", Role: "cocina"}
	now := time.Now()
	tok, err := Generate("secreto", "restaurante-api", id, 10, now)
	require.NoError(t, err)

	got, err := Parse("secreto", tok, now)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	now := time.Now()
	tok, err := Generate("secreto", "restaurante-api", Identidad{UserID: "u-1"}, 10, now)
	require.NoError(t, err)

	_, err = Parse("otro", tok, now)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	now := time.Now()
	tok, err := Generate("secreto", "restaurante-api", Identidad{UserID: "u-1"}, 5, now.Add(-time.Hour))
	require.NoError(t, err)

	_, err = Parse("secreto", tok, now)
	assert.Error(t, err)
}

// La expiración se evalúa contra la hora recibida, no contra la del sistema.
func TestParse_ExpiracionSegunHoraIndicada(t *testing.T) {
	emitido := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	tok, err := Generate("secreto", "restaurante-api", Identidad{UserID: "u-1"}, 60, emitido)
	require.NoError(t, err)

	_, err = Parse("secreto", tok, emitido.Add(30*time.Minute))
	assert.NoError(t, err)

	_, err = Parse("secreto", tok, emitido.Add(61*time.Minute))
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "x", Identidad{}, 1, time.Now())
	assert.Error(t, err)
	_, err = Parse("", "a.b.c", time.Now())
	assert.Error(t, err)
}
