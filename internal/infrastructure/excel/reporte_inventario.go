// Package excel genera el reporte de inventario en xlsx.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/restaurante-api/internal/application/inventario"
)

const hojaInsumos = "Insumos"

var cabecera = []interface{}{
	"id", "nombre", "unidad_id", "grupo_id", "existencia", "stock_minimo",
	"costo_promedio", "valor", "bajo_minimo", "estado",
}

// ReporteInventario implementa inventario.GeneradorReporte con excelize.
type ReporteInventario struct{}

func NewReporteInventario() *ReporteInventario { return &ReporteInventario{} }

func (ReporteInventario) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (ReporteInventario) Extension() string { return "xlsx" }

// Generar escribe una hoja con los insumos y otra con el resumen.
func (ReporteInventario) Generar(r *inventario.Reporte) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), hojaInsumos); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(hojaInsumos, "A1", &cabecera); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}
	for n, i := range r.Insumos {
		fila := []interface{}{
			i.ID, i.Nombre, i.UnidadID, i.GrupoID,
			i.Existencia.InexactFloat64(), i.StockMinimo.InexactFloat64(),
			i.CostoPromedio.InexactFloat64(), i.Existencia.Mul(i.CostoPromedio).InexactFloat64(),
			i.BajoMinimo, string(i.Estado),
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(hojaInsumos, cell, &fila); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", n+2, err)
		}
	}

	const hojaResumen = "Resumen"
	if _, err := f.NewSheet(hojaResumen); err != nil {
		return nil, fmt.Errorf("excel: hoja resumen: %w", err)
	}
	resumen := [][]interface{}{
		{"titulo", r.Titulo},
		{"generado_en", r.GeneradoEn.Format("2006-01-02 15:04:05")},
		{"total_insumos", r.Estadisticas.TotalInsumos},
		{"bajo_minimo", r.Estadisticas.BajoMinimo},
		{"valor_total", r.Estadisticas.ValorTotal.InexactFloat64()},
	}
	for n, fila := range resumen {
		cell, _ := excelize.CoordinatesToCellName(1, n+1)
		if err := f.SetSheetRow(hojaResumen, cell, &fila); err != nil {
			return nil, fmt.Errorf("excel: resumen: %w", err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
