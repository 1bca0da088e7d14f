package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
)

func TestGenerar_HojasYFilas(t *testing.T) {
	r := &inventario.Reporte{
		Titulo:     "Inventario de insumos",
		GeneradoEn: time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		Insumos: []dto.InsumoResponse{
			{ID: "i1", Nombre: "Harina", Existencia: decimal.NewFromInt(3), CostoPromedio: decimal.NewFromInt(4200), Estado: "activo"},
		},
		Estadisticas: dto.EstadisticasInventarioResponse{TotalInsumos: 1, ValorTotal: decimal.NewFromInt(12600)},
	}

	b, err := NewReporteInventario().Generar(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Insumos", "Resumen"}, f.GetSheetList())
	rows, err := f.GetRows("Insumos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "nombre", rows[0][1])
	assert.Equal(t, "Harina", rows[1][1])
	assert.Equal(t, "12600", rows[1][7])

	v, err := f.GetCellValue("Resumen", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
