package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres/migrations"
)

func TestTraducir(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		want  error
		campo string
	}{
		{"único", &pgconn.PgError{Code: codUnique, ConstraintName: "unidades_clave_key"}, domain.ErrDuplicate, "clave"},
		{"área activa repetida", &pgconn.PgError{Code: codUnique, ConstraintName: "areas_produccion_nombre_activa_key"}, domain.ErrDuplicate, "nombre"},
		{"fk envuelta", fmt.Errorf("exec: %w", &pgconn.PgError{Code: codForeignKey, ConstraintName: "subgrupos_grupo_id_fkey"}), domain.ErrIntegrity, "grupo_id"},
		{"check", &pgconn.PgError{Code: codCheck, ConstraintName: "tipos_cliente_descuento_check"}, domain.ErrValidation, "tipos_cliente_descuento_check"},
		{"otro código", &pgconn.PgError{Code: "57014"}, domain.ErrStorage, "list grupos"},
		{"red", errors.New("connection reset by peer"), domain.ErrStorage, "list grupos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traducir("list grupos", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), tt.campo)
		})
	}
	assert.NoError(t, traducir("x", nil))
}

func TestEsUUID(t *testing.T) {
	assert.True(t, esUUID("7f1c3a52-2f4e-4f5a-9d55-0b7f5a9b8e11"))
	assert.False(t, esUUID("no-existe"))
	assert.False(t, esUUID(""))
}

func TestMarcadores(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", marcadores(1, 3))
	assert.Equal(t, "$6", marcadores(6, 1))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("g1"))
	assert.Equal(t, "g1", *nullable("g1"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_catalogos.sql", "00002_operacion.sql"}, files)

	for _, f := range files {
		b, err := fs.ReadFile(migrations.FS, f)
		require.NoError(t, err)
		assert.Contains(t, string(b), "-- +goose Up")
		assert.Contains(t, string(b), "-- +goose Down")
	}
}

func TestRestriccionesConocidasExistenEnElEsquema(t *testing.T) {
	var esquema string
	for _, f := range []string{"00001_catalogos.sql", "00002_operacion.sql"} {
		b, err := fs.ReadFile(migrations.FS, f)
		require.NoError(t, err)
		esquema += string(b)
	}
	for nombre := range campoPorRestriccion {
		assert.Contains(t, esquema, nombre)
	}
}
