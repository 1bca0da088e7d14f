// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total insumos / Bajo mínimo / Valor total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Insumo | Existencia | Mínimo | Costo prom. | Valor   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
)

var (
	colorPrimario = &props.Color{Red: 120, Green: 40, Blue: 20}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta   = &props.Color{Red: 180, Green: 20, Blue: 20}
)

// ReporteInventario implementa inventario.GeneradorReporte usando Maroto v2.
type ReporteInventario struct{}

func NewReporteInventario() *ReporteInventario { return &ReporteInventario{} }

func (ReporteInventario) ContentType() string { return "application/pdf" }
func (ReporteInventario) Extension() string   { return "pdf" }

// Generar arma el documento y devuelve sus bytes.
func (ReporteInventario) Generar(r *inventario.Reporte) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Titulo, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(encabezado(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(resumen(r.Estadisticas))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(cabeceraTabla())
	m.AddRows(filas(r.Insumos)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func encabezado(r *inventario.Reporte) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(r.Titulo, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+r.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGris,
		})),
	)
}

func resumen(e dto.EstadisticasInventarioResponse) core.Row {
	dato := func(etiqueta, valor string) core.Col {
		return col.New(4).Add(
			text.New(etiqueta, props.Text{Size: 8, Color: colorGris, Top: 1}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(14).Add(
		dato("Total insumos", strconv.Itoa(e.TotalInsumos)),
		dato("Bajo mínimo", strconv.Itoa(e.BajoMinimo)),
		dato("Valor total", "$"+Moneda(e.ValorTotal)),
	)
}

func cabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimario, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Insumo", 4, align.Left),
		h("Existencia", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Costo prom.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

func filas(insumos []dto.InsumoResponse) []core.Row {
	out := make([]core.Row, 0, len(insumos))
	for _, i := range insumos {
		estilo := props.Text{Size: 8, Top: 1}
		if i.BajoMinimo {
			estilo.Color = colorAlerta
		}
		der := estilo
		der.Align = align.Right
		out = append(out, row.New(6).Add(
			col.New(4).Add(text.New(i.Nombre, estilo)),
			col.New(2).Add(text.New(i.Existencia.String(), der)),
			col.New(2).Add(text.New(i.StockMinimo.String(), der)),
			col.New(2).Add(text.New("$"+Moneda(i.CostoPromedio), der)),
			col.New(2).Add(text.New("$"+Moneda(i.Existencia.Mul(i.CostoPromedio)), der)),
		))
	}
	return out
}

// Moneda redondea a pesos e inserta puntos de miles: 1250000.4 → "1.250.000".
func Moneda(d decimal.Decimal) string {
	s := d.Round(0).String()
	signo := ""
	if len(s) > 0 && s[0] == '-' {
		signo, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return signo + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return signo + string(buf)
}
