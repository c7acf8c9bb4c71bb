package reports

import (
	"context"
	"math"
	"time"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// Delivery construye el reporte de entregas: tasa de éxito global y serie
// temporal con duración media de entrega por bucket.
func (s *Service) Delivery(ctx context.Context, chainID int64, q dto.ReportQuery) (*dto.DeliveryReportDTO, error) {
	g, err := ParseGranularity(q.GroupBy)
	if err != nil {
		return nil, err
	}
	from, to, err := parseDateRange(q.DateFrom, q.DateTo)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListShipments(ctx, repository.ShipmentReportFilter{
		ChainID: chainID,
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, rowSourceErr("reporte de entregas", err)
	}

	series := GroupByDate(rows, g,
		// Bucket por fecha de salida, con fallback a la de entrega;
		// envíos sin ninguna fecha quedan fuera de la serie.
		func(sh entity.Shipment) time.Time { return sh.ReportDate() },
		func(key string, group []entity.Shipment) dto.DeliverySeriesPoint {
			point := dto.DeliverySeriesPoint{Date: key, Total: len(group)}
			var totalHours float64
			var withDuration int
			for _, sh := range group {
				switch sh.Status {
				case entity.ShipmentStatusDelivered:
					point.Delivered++
				case entity.ShipmentStatusFailed:
					point.Failed++
				}
				if d, ok := sh.DeliveryDuration(); ok {
					totalHours += d.Hours()
					withDuration++
				}
			}
			// Promedio solo sobre envíos entregados con ambas marcas de
			// tiempo; se omite si el bucket no tiene ninguno
			if withDuration > 0 {
				avg := round1(totalHours / float64(withDuration))
				point.AvgDeliveryHours = &avg
			}
			return point
		})

	summary := dto.DeliverySummary{Total: len(rows)}
	for _, sh := range rows {
		switch sh.Status {
		case entity.ShipmentStatusDelivered:
			summary.Delivered++
		case entity.ShipmentStatusFailed:
			summary.Failed++
		}
	}
	if summary.Total > 0 {
		summary.SuccessRate = math.Round(float64(summary.Delivered)/float64(summary.Total)*1000) / 10
	}

	return &dto.DeliveryReportDTO{Summary: summary, Series: series}, nil
}

// round1 redondea a un decimal.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
