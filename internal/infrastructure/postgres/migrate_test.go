package postgres

import (
	"io/fs"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres/migrations"
)

// La clave normalizada puede ser más larga que el nombre ("ß" → "ss"), así que
// la columna no puede heredar el límite de nombre.
func TestMigraciones_ClaveNombreSinLimiteDeLongitud(t *testing.T) {
	nombre := strings.Repeat("ß", 120)
	require.Greater(t, utf8.RuneCountInString(entity.ClaveNombre(nombre)), 120)

	archivos, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, archivos)

	columnas := 0
	for _, f := range archivos {
		b, err := fs.ReadFile(migrations.FS, f)
		require.NoError(t, err)
		for _, linea := range strings.Split(string(b), "\n") {
			campos := strings.Fields(linea)
			if len(campos) < 2 || campos[0] != "clave_nombre" {
				continue
			}
			columnas++
			assert.Equal(t, "TEXT", campos[1], "%s: %s", f, strings.TrimSpace(linea))
		}
	}
	assert.Positive(t, columnas)
}
