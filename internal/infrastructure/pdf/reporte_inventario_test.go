package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
)

func TestMoneda(t *testing.T) {
	casos := map[string]string{
		"0":         "0",
		"999":       "999",
		"25000":     "25.000",
		"1250000.4": "1.250.000",
		"-4500.6":   "-4.501",
	}
	for in, want := range casos {
		assert.Equal(t, want, Moneda(decimal.RequireFromString(in)), in)
	}
}

func TestGenerar_ProducePDF(t *testing.T) {
	r := &inventario.Reporte{
		Titulo:     "Inventario de insumos",
		GeneradoEn: time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		Insumos: []dto.InsumoResponse{
			{Nombre: "Harina", Existencia: decimal.NewFromInt(3), StockMinimo: decimal.NewFromInt(5), CostoPromedio: decimal.NewFromInt(4200), BajoMinimo: true},
			{Nombre: "Aceite", Existencia: decimal.NewFromInt(10), CostoPromedio: decimal.NewFromInt(9800)},
		},
		Estadisticas: dto.EstadisticasInventarioResponse{TotalInsumos: 2, BajoMinimo: 1, ValorTotal: decimal.NewFromInt(110600)},
	}

	g := NewReporteInventario()
	b, err := g.Generar(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
	assert.Equal(t, "pdf", g.Extension())
}
