// Package pdf genera el reporte de cierre de turno en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Parqueadero + operador  │  Ventana del turno         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Entradas | Salidas | Dentro | Estadía promedio     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Salidas | Recaudo                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL RECAUDADO                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/ports"
)

var _ ports.ShiftReportPDFGenerator = (*ShiftReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

// ShiftReportGenerator implementa ports.ShiftReportPDFGenerator usando Maroto v2.
type ShiftReportGenerator struct {
	loc *time.Location
}

// NewShiftReportGenerator construye el generador. loc es la zona en la que se muestran las horas.
func NewShiftReportGenerator(loc *time.Location) *ShiftReportGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &ShiftReportGenerator{loc: loc}
}

// GenerateShiftReportPDF genera el PDF y devuelve sus bytes.
func (g *ShiftReportGenerator) GenerateShiftReportPDF(_ context.Context, r *dto.ShiftReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de turno", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.ByCategory)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r.Revenue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ShiftReportGenerator) headerRow(r *dto.ShiftReportResponse) core.Row {
	operator := "Todos los operadores"
	if r.OperatorID != "" {
		operator = "Operador: " + r.OperatorID
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CIERRE DE TURNO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(operator, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Desde: "+r.From.In(g.loc).Format(dateLayout), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Hasta: "+r.To.In(g.loc).Format(dateLayout), props.Text{
				Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

func summaryRow(r *dto.ShiftReportResponse) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Entradas", strconv.Itoa(r.Entries)),
		cell("Salidas", strconv.Itoa(r.Exits)),
		cell("Siguen dentro", strconv.Itoa(r.StillOpen)),
		cell("Estadía promedio", r.AverageStay),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 6, align.Left),
		h("Salidas", 2, align.Center),
		h("Recaudo", 4, align.Right),
	)
}

// tableRows una fila por categoría; sin salidas se muestra una fila vacía explicativa.
func tableRows(items []dto.CategoryTotalsResponse) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin salidas en el turno", props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 1}),
		))}
	}
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(7).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Exits), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.Revenue, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func totalRow(revenue string) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL RECAUDADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(revenue, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}
