// Package reports contiene los casos de uso de reportes y analítica del CKMS:
// bucketing temporal, motor genérico de agrupación, constructores de reporte
// (overview, pedidos, producción, inventario, entregas) y exportación CSV/PDF.
package reports

import (
	"fmt"
	"time"

	"github.com/cocinacentral/ckms-api/internal/domain"
)

// Granularity granularidad de agrupación temporal de una serie.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity valida el parámetro groupBy; vacío equivale a day.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityDay, nil
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: groupBy %q (valores: day, week, month)", domain.ErrInvalidInput, s)
}

// BucketKey devuelve la clave canónica del período que contiene t, en UTC:
//
//	day   → "2026-01-31"            (fecha truncada)
//	week  → "2026-01-25"            (domingo que inicia la semana)
//	month → "2026-01"               (año-mes con cero a la izquierda)
//
// Las claves ordenan lexicográficamente igual que cronológicamente, así que
// las series pueden ordenarse como strings sin volver a parsear fechas.
// Un time cero produce clave vacía; el motor de agrupación descarta esas filas.
func BucketKey(t time.Time, g Granularity) string {
	if t.IsZero() {
		return ""
	}
	t = t.UTC()
	switch g {
	case GranularityMonth:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	case GranularityWeek:
		// Retroceder al domingo que inicia la semana
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		return sunday.Format("2006-01-02")
	default:
		return t.Format("2006-01-02")
	}
}
