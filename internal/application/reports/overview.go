package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// Overview construye las estadísticas del dashboard de la cadena.
//
// Tres consultas independientes en paralelo:
//  1. pedidos (todos)            → totales, pendientes, completados, ingresos
//  2. alertas de stock sin resolver → lowStockItems
//  3. envíos no terminales       → pendingDeliveries
func (s *Service) Overview(ctx context.Context, chainID int64) (*dto.OverviewDTO, error) {
	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	ordersCh := make(chan ordersResult, 1)
	alertsCh := make(chan countResult, 1)
	shipCh := make(chan countResult, 1)

	go func() {
		rows, err := s.repo.ListOrders(ctx, repository.OrderReportFilter{ChainID: chainID})
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		n, err := s.repo.CountStockAlerts(ctx, chainID)
		alertsCh <- countResult{n, err}
	}()
	go func() {
		n, err := s.repo.CountPendingShipments(ctx, chainID)
		shipCh <- countResult{n, err}
	}()

	orders := <-ordersCh
	alerts := <-alertsCh
	shipments := <-shipCh

	if orders.err != nil {
		return nil, rowSourceErr("overview: pedidos", orders.err)
	}
	if alerts.err != nil {
		return nil, rowSourceErr("overview: alertas", alerts.err)
	}
	if shipments.err != nil {
		return nil, rowSourceErr("overview: envíos", shipments.err)
	}

	out := &dto.OverviewDTO{
		TotalOrders:       len(orders.rows),
		TotalRevenue:      decimal.Zero,
		LowStockItems:     alerts.n,
		PendingDeliveries: shipments.n,
	}
	for _, o := range orders.rows {
		switch o.Status {
		case entity.OrderStatusPending:
			out.PendingOrders++
		case entity.OrderStatusDelivered:
			out.CompletedOrders++
		}
		// Montos NULL cuentan como cero en los ingresos
		out.TotalRevenue = out.TotalRevenue.Add(o.RevenueAmount())
	}
	return out, nil
}
