package reports

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/domain"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// ReportDocument representación tabular de un reporte para exportación.
// CSV y PDF renderizan exactamente las mismas filas.
type ReportDocument struct {
	Title   string
	Period  string // rango legible, ej. "2026-01-01 – 2026-01-31"
	Columns []string
	Rows    [][]string
}

// PDFGenerator puerto de renderizado PDF de un ReportDocument.
// La implementación vive en infrastructure/pdf.
type PDFGenerator interface {
	Render(ctx context.Context, doc ReportDocument) ([]byte, error)
}

// Service casos de uso de reportes. La fuente de filas se inyecta como
// interfaz (nada de clientes singleton), lo que permite sustituirla por un
// fake en memoria en los tests.
type Service struct {
	repo repository.ReportsRepository
	pdf  PDFGenerator
}

// NewService construye el servicio de reportes.
func NewService(repo repository.ReportsRepository, pdf PDFGenerator) *Service {
	return &Service{repo: repo, pdf: pdf}
}

// rowSourceErr marca un fallo de la fuente de filas conservando la causa,
// para que la capa HTTP lo distinga de los errores de validación.
func rowSourceErr(scope string, err error) error {
	return fmt.Errorf("%s: %w: %w", scope, domain.ErrRowSource, err)
}
