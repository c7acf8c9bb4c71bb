package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// productionRow lote de producción unido con su plan y el nombre del ítem.
// La fecha del reporte es la de inicio del plan, con fallback a la fecha en
// que arrancó el lote; sin ninguna de las dos la fila se excluye.
type productionRow struct {
	detail   entity.ProductionDetail
	date     time.Time
	itemName string
}

// Production construye el reporte de producción: lotes agrupados por fecha de
// plan, cantidades planificadas vs producidas y planes completados.
func (s *Service) Production(ctx context.Context, chainID int64, q dto.ReportQuery) (*dto.ProductionReportDTO, error) {
	g, err := ParseGranularity(q.GroupBy)
	if err != nil {
		return nil, err
	}
	if _, _, err := parseDateRange(q.DateFrom, q.DateTo); err != nil {
		return nil, err
	}

	plans, err := s.repo.ListProductionPlans(ctx, chainID)
	if err != nil {
		return nil, rowSourceErr("reporte de producción: planes", err)
	}
	details, err := s.repo.ListProductionDetails(ctx, chainID)
	if err != nil {
		return nil, rowSourceErr("reporte de producción: lotes", err)
	}

	// Resolver nombres de ítems en una sola consulta por lote
	itemNames, err := s.itemNamesFor(ctx, details)
	if err != nil {
		return nil, rowSourceErr("reporte de producción: ítems", err)
	}

	planByID := make(map[int64]entity.ProductionPlan, len(plans))
	for _, p := range plans {
		planByID[p.ID] = p
	}

	rows := make([]productionRow, 0, len(details))
	for _, d := range details {
		var date time.Time
		if plan, ok := planByID[d.PlanID]; ok && !plan.StartDate.IsZero() {
			date = plan.StartDate
		} else if d.StartedAt != nil {
			date = d.StartedAt.UTC().Truncate(24 * time.Hour)
		}
		if date.IsZero() || !inDateRange(date, q.DateFrom, q.DateTo) {
			continue
		}
		name := itemNames[d.ItemID]
		if name == "" {
			name = fmt.Sprintf("Item %d", d.ItemID)
		}
		rows = append(rows, productionRow{detail: d, date: date, itemName: name})
	}

	series := GroupByDate(rows, g,
		func(r productionRow) time.Time { return r.date },
		func(key string, group []productionRow) dto.ProductionSeriesPoint {
			point := dto.ProductionSeriesPoint{
				Date:     key,
				Planned:  decimal.Zero,
				Produced: decimal.Zero,
				Batches:  len(group),
			}
			for _, r := range group {
				point.Planned = point.Planned.Add(r.detail.QuantityPlanned)
				point.Produced = point.Produced.Add(r.detail.QuantityProduced)
			}
			return point
		})

	summary := dto.ProductionSummary{
		TotalPlanned:  decimal.Zero,
		TotalProduced: decimal.Zero,
	}
	for _, r := range rows {
		summary.TotalPlanned = summary.TotalPlanned.Add(r.detail.QuantityPlanned)
		summary.TotalProduced = summary.TotalProduced.Add(r.detail.QuantityProduced)
	}
	for _, p := range plans {
		if p.Status == entity.PlanStatusCompleted {
			summary.PlansCompleted++
		}
	}

	return &dto.ProductionReportDTO{Summary: summary, Series: series}, nil
}

// itemNamesFor resuelve los nombres de los ítems referenciados por los lotes
// con una única consulta sobre los ids distintos.
func (s *Service) itemNamesFor(ctx context.Context, details []entity.ProductionDetail) (map[int64]string, error) {
	seen := make(map[int64]bool, len(details))
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		if !seen[d.ItemID] {
			seen[d.ItemID] = true
			ids = append(ids, d.ItemID)
		}
	}
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	return s.repo.GetItemNames(ctx, ids)
}

// inDateRange compara la fecha del lote contra el rango pedido usando las
// claves YYYY-MM-DD (rango inclusivo de días completos).
func inDateRange(date time.Time, fromStr, toStr string) bool {
	key := date.UTC().Format(dateLayout)
	if fromStr != "" && key < fromStr {
		return false
	}
	if toStr != "" && key > toStr {
		return false
	}
	return true
}
