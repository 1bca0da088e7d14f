package inventario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/internal/domain/inventario"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCostoPromedioPonderado(t *testing.T) {
	// 10 kg a 100 + 10 kg a 200 → 150
	got := inventario.CostoPromedioPonderado(d("10"), d("100"), d("10"), d("200"))
	assert.True(t, got.Equal(d("150")), "costo promedio esperado 150, obtenido %s", got)
}

func TestCostoPromedioPonderado_SinExistenciaPrevia(t *testing.T) {
	got := inventario.CostoPromedioPonderado(decimal.Zero, decimal.Zero, d("4"), d("2500"))
	assert.True(t, got.Equal(d("2500")))
}

func TestCostoPromedioPonderado_SumaCero(t *testing.T) {
	got := inventario.CostoPromedioPonderado(decimal.Zero, d("10"), decimal.Zero, d("10"))
	assert.True(t, got.IsZero())
}

func TestValorizar(t *testing.T) {
	assert.True(t, inventario.Valorizar(d("2.5"), d("1000")).Equal(d("2500")))
	assert.True(t, inventario.Valorizar(d("-1"), d("1000")).IsZero(), "existencia negativa no suma valor")
}

func TestCantidadSugerida(t *testing.T) {
	assert.True(t, inventario.CantidadSugerida(d("2"), d("10")).Equal(d("13")))
	assert.True(t, inventario.CantidadSugerida(d("20"), d("10")).IsZero())
}
