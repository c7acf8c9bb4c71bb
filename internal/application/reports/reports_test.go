package reports_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria de la fuente de filas, para ejercitar los constructores de
// reporte sin base de datos. Cada campo err permite simular un fallo del
// almacén en esa lectura concreta.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	orders    []entity.Order
	ordersErr error

	shipments    []entity.Shipment
	shipmentsErr error

	pendingShipments int
	stockAlerts      int
	countErr         error

	plans   []entity.ProductionPlan
	details []entity.ProductionDetail

	inventory []entity.InventoryRecord
	alerts    []entity.Alert

	itemNames  map[int64]string
	storeNames map[int64]string

	// ids pedidos en la última llamada a GetItemNames, para verificar el
	// batching de la resolución de nombres
	requestedItemIDs []int64

	lastOrderFilter repository.OrderReportFilter
}

var _ repository.ReportsRepository = (*fakeRepo)(nil)

func (f *fakeRepo) ListOrders(_ context.Context, filter repository.OrderReportFilter) ([]entity.Order, error) {
	f.lastOrderFilter = filter
	return f.orders, f.ordersErr
}

func (f *fakeRepo) ListShipments(_ context.Context, _ repository.ShipmentReportFilter) ([]entity.Shipment, error) {
	return f.shipments, f.shipmentsErr
}

func (f *fakeRepo) CountPendingShipments(_ context.Context, _ int64) (int, error) {
	return f.pendingShipments, f.countErr
}

func (f *fakeRepo) CountStockAlerts(_ context.Context, _ int64) (int, error) {
	return f.stockAlerts, f.countErr
}

func (f *fakeRepo) ListProductionPlans(_ context.Context, _ int64) ([]entity.ProductionPlan, error) {
	return f.plans, nil
}

func (f *fakeRepo) ListProductionDetails(_ context.Context, _ int64) ([]entity.ProductionDetail, error) {
	return f.details, nil
}

func (f *fakeRepo) ListInventory(_ context.Context, _, _ int64) ([]entity.InventoryRecord, error) {
	return f.inventory, nil
}

func (f *fakeRepo) ListUnresolvedAlerts(_ context.Context, _ int64) ([]entity.Alert, error) {
	return f.alerts, nil
}

func (f *fakeRepo) GetItemNames(_ context.Context, ids []int64) (map[int64]string, error) {
	f.requestedItemIDs = ids
	return f.itemNames, nil
}

func (f *fakeRepo) GetStoreNames(_ context.Context, _ []int64) (map[int64]string, error) {
	return f.storeNames, nil
}

// ── Helpers de fixtures ───────────────────────────────────────────────────────

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

func orderRow(status entity.OrderStatus, amount int64, created string) entity.Order {
	return entity.Order{
		Status:      status,
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(amount)),
		CreatedAt:   mustDate(created),
	}
}
