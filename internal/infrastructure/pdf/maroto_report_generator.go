// Package pdf renderiza reportes tabulares como documentos PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO DEL REPORTE                         │
//	│  Período: 2026-01-01 – 2026-01-31           │
//	│  ───────────────────────────────────────    │
//	│  TABLA: cabecera + una fila por registro    │
//	│  ───────────────────────────────────────    │
//	│  Generado: fecha de emisión                 │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/cocinacentral/ckms-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 180, Green: 60, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render genera el PDF del documento tabular y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(_ context.Context, doc reports.ReportDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(len(doc.Columns))
	m.AddRows(tableHeaderRow(doc.Columns, widths))
	for _, cells := range doc.Rows {
		m.AddRows(dataRow(cells, widths))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado: "+time.Now().UTC().Format("2006-01-02 15:04 UTC"), props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
	)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func titleRows(doc reports.ReportDocument) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if doc.Period != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Período: "+doc.Period, props.Text{
				Size: 9, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

func tableHeaderRow(columns []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, name := range columns {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left,
				Color: colorPrimary, Top: 2, Left: 1,
			}),
		))
	}
	return row.New(8).Add(cols...)
}

func dataRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		cols = append(cols, col.New(widths[i]).Add(
			text.New(cell, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

// columnWidths reparte la rejilla de 12 columnas de Maroto; el sobrante va a
// la primera columna (suele ser la fecha o el nombre, que necesita más ancho).
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	base := 12 / n
	if base == 0 {
		base = 1
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	if rest := 12 - base*n; rest > 0 {
		widths[0] += rest
	}
	return widths
}
