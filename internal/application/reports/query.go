package reports

import (
	"fmt"
	"time"

	"github.com/cocinacentral/ckms-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDateRange convierte dateFrom/dateTo (YYYY-MM-DD, opcionales) en límites
// de tiempo inclusivos del día completo en UTC: from a las 00:00:00 y to a las
// 23:59:59. Un string vacío produce nil (sin límite).
func parseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		d, err := time.ParseInLocation(dateLayout, fromStr, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: dateFrom %q (formato YYYY-MM-DD)", domain.ErrInvalidInput, fromStr)
		}
		from = &d
	}
	if toStr != "" {
		d, err := time.ParseInLocation(dateLayout, toStr, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: dateTo %q (formato YYYY-MM-DD)", domain.ErrInvalidInput, toStr)
		}
		end := d.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: dateFrom no puede ser posterior a dateTo", domain.ErrInvalidInput)
	}
	return from, to, nil
}
