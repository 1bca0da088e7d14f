package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const csvLegado = "id;clave;nombre;abreviacion;usuario_ulid;empresa_ulid;fecha_sync\n" +
	"01HZX3K8Q4V6W2N9R5T7Y1B3C0;kg;Kilogramo;kg;01HZX3K8Q4V6W2N9R5T7Y1B3C1;01HZX3K8Q4V6W2N9R5T7Y1B3C2;15/01/2024 08:30\n" +
	"no-es-ulid;LT;Litro de café;l;;;\n" +
	";;;;;;\n"

func TestGenerar(t *testing.T) {
	var out bytes.Buffer
	res, err := generar(strings.NewReader(csvLegado), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, res.filas)
	assert.Equal(t, 1, res.ulidsInvalidos)

	sql := out.String()
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "'KG', 'Kilogramo'")
	assert.Contains(t, sql, "'2024-01-15T13:30:00Z'")
	assert.Contains(t, sql, "'Litro de café'")
	assert.Contains(t, sql, "DELETE FROM unidades_sync WHERE id IN ('01HZX3K8Q4V6W2N9R5T7Y1B3C0', 'no-es-ulid');")
}

func TestGenerar_DecodificaLatin1(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(csvLegado)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = generar(transform.NewReader(strings.NewReader(latin1), charmap.ISO8859_1.NewDecoder()), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Litro de café")
}

func TestGenerar_FaltaColumna(t *testing.T) {
	_, err := generar(strings.NewReader("id;clave;nombre\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "abreviacion")
}

func TestEscapeSQL(t *testing.T) {
	assert.Equal(t, "Pulgada d''agua", escapeSQL("Pulgada d'agua"))
}
