package reports

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain"
)

// Tipos de reporte exportables.
const (
	ReportTypeOrders     = "orders"
	ReportTypeProduction = "production"
	ReportTypeInventory  = "inventory"
	ReportTypeDelivery   = "delivery"
)

// Formatos de exportación.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ExportResult archivo de reporte listo para descargar.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Export genera el reporte pedido y lo serializa a CSV o lo renderiza a PDF.
// Ambos formatos salen del mismo ReportDocument tabular, así que el contenido
// de las filas es idéntico en los dos.
func (s *Service) Export(ctx context.Context, chainID int64, q dto.ExportQuery) (*ExportResult, error) {
	reportType := q.Type
	if reportType == "" {
		reportType = ReportTypeOrders
	}
	format := q.Format
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatPDF {
		return nil, fmt.Errorf("%w: format %q (valores: csv, pdf)", domain.ErrInvalidInput, q.Format)
	}

	doc, err := s.buildDocument(ctx, chainID, reportType, q.ReportQuery)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format(dateLayout)
	result := &ExportResult{
		Filename: fmt.Sprintf("report-%s-%s.%s", reportType, today, format),
	}

	if format == FormatPDF {
		content, err := s.pdf.Render(ctx, *doc)
		if err != nil {
			return nil, fmt.Errorf("exportar %s: render PDF: %w", reportType, err)
		}
		result.ContentType = "application/pdf"
		result.Content = content
		return result, nil
	}

	result.ContentType = "text/csv; charset=utf-8"
	result.Content = marshalCSV(*doc)
	return result, nil
}

// buildDocument ejecuta el reporte y lo aplana a filas tabulares con el orden
// de columnas fijo de cada tipo.
func (s *Service) buildDocument(ctx context.Context, chainID int64, reportType string, q dto.ReportQuery) (*ReportDocument, error) {
	doc := &ReportDocument{Period: periodLabel(q.DateFrom, q.DateTo)}

	switch reportType {
	case ReportTypeOrders:
		report, err := s.Orders(ctx, chainID, q)
		if err != nil {
			return nil, err
		}
		doc.Title = "Reporte de pedidos"
		doc.Columns = []string{"date", "total", "completed", "revenue"}
		for _, p := range report.Series {
			doc.Rows = append(doc.Rows, []string{
				p.Date, strconv.Itoa(p.Total), strconv.Itoa(p.Completed), p.Revenue.String(),
			})
		}

	case ReportTypeProduction:
		report, err := s.Production(ctx, chainID, q)
		if err != nil {
			return nil, err
		}
		doc.Title = "Reporte de producción"
		doc.Columns = []string{"date", "planned", "produced", "batches"}
		for _, p := range report.Series {
			doc.Rows = append(doc.Rows, []string{
				p.Date, p.Planned.String(), p.Produced.String(), strconv.Itoa(p.Batches),
			})
		}

	case ReportTypeInventory:
		report, err := s.Inventory(ctx, chainID, q)
		if err != nil {
			return nil, err
		}
		doc.Title = "Reporte de inventario"
		doc.Columns = []string{"itemId", "itemName", "quantity", "minStockLevel", "status"}
		for _, it := range report.Items {
			doc.Rows = append(doc.Rows, []string{
				strconv.FormatInt(it.ItemID, 10), it.ItemName,
				it.Quantity.String(), it.MinStockLevel.String(), it.Status,
			})
		}

	case ReportTypeDelivery:
		report, err := s.Delivery(ctx, chainID, q)
		if err != nil {
			return nil, err
		}
		doc.Title = "Reporte de entregas"
		doc.Columns = []string{"date", "total", "delivered", "failed", "avgDeliveryHours"}
		for _, p := range report.Series {
			avg := "" // campo opcional: vacío cuando el bucket no tiene entregas medibles
			if p.AvgDeliveryHours != nil {
				avg = strconv.FormatFloat(*p.AvgDeliveryHours, 'f', -1, 64)
			}
			doc.Rows = append(doc.Rows, []string{
				p.Date, strconv.Itoa(p.Total), strconv.Itoa(p.Delivered), strconv.Itoa(p.Failed), avg,
			})
		}

	default:
		return nil, fmt.Errorf("%w: type %q (valores: orders, production, inventory, delivery)", domain.ErrInvalidInput, reportType)
	}

	return doc, nil
}

// marshalCSV serializa el documento: línea de cabecera con los nombres de
// columna literales y una línea por fila, campos separados por comas.
func marshalCSV(doc ReportDocument) []byte {
	var b strings.Builder
	writeCSVLine(&b, doc.Columns)
	for _, row := range doc.Rows {
		writeCSVLine(&b, row)
	}
	return []byte(b.String())
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(f))
	}
	b.WriteByte('\n')
}

// escapeCSV envuelve en comillas dobles los campos con coma, comilla doble o
// salto de línea, duplicando las comillas internas.
func escapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// periodLabel rango legible para la cabecera del PDF.
func periodLabel(from, to string) string {
	switch {
	case from == "" && to == "":
		return "Todo el histórico"
	case from == "":
		return "Hasta " + to
	case to == "":
		return "Desde " + from
	default:
		return from + " – " + to
	}
}
