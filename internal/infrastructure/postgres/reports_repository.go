package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo lecturas de solo lectura para el subsistema de reportes.
// Toda consulta filtra por chain_id; el resto de filtros opcionales se agrega
// como condiciones posicionales.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository construye el adaptador de reportes.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// ListOrders devuelve los pedidos de la cadena ordenados por created_at.
// From/To acotan por created_at; StoreID 0 significa todas las tiendas.
func (r *ReportsRepo) ListOrders(ctx context.Context, f repository.OrderReportFilter) ([]entity.Order, error) {
	var sb strings.Builder
	sb.WriteString(`
	SELECT id, chain_id, store_id, order_number, status,
	       COALESCE(requested_date, '0001-01-01'::date),
	       total_amount, COALESCE(notes, ''), created_at, updated_at
	FROM orders
	WHERE chain_id = $1`)
	args := []any{f.ChainID}

	if f.From != nil {
		args = append(args, *f.From)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		fmt.Fprintf(&sb, " AND created_at <= $%d", len(args))
	}
	if f.StoreID != 0 {
		args = append(args, f.StoreID)
		fmt.Fprintf(&sb, " AND store_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("reports.ListOrders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.ChainID, &o.StoreID, &o.OrderNumber, &o.Status,
			&o.RequestedDate, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("reports.ListOrders scan: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ListShipments devuelve los envíos de la cadena ordenados por fecha de salida.
// From/To acotan por shipped_at con fallback a delivered_at, igual que la
// fecha con la que el envío entra a las series.
func (r *ReportsRepo) ListShipments(ctx context.Context, f repository.ShipmentReportFilter) ([]entity.Shipment, error) {
	var sb strings.Builder
	sb.WriteString(`
	SELECT id, chain_id, order_id, status, shipped_at, delivered_at
	FROM shipments
	WHERE chain_id = $1`)
	args := []any{f.ChainID}

	if f.From != nil {
		args = append(args, *f.From)
		fmt.Fprintf(&sb, " AND COALESCE(shipped_at, delivered_at) >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		fmt.Fprintf(&sb, " AND COALESCE(shipped_at, delivered_at) <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY shipped_at ASC NULLS LAST")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("reports.ListShipments: %w", err)
	}
	defer rows.Close()

	var shipments []entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.ChainID, &s.OrderID, &s.Status, &s.ShippedAt, &s.DeliveredAt); err != nil {
			return nil, fmt.Errorf("reports.ListShipments scan: %w", err)
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}

// CountPendingShipments cuenta los envíos aún en curso (ni delivered ni failed).
func (r *ReportsRepo) CountPendingShipments(ctx context.Context, chainID int64) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM shipments
	WHERE chain_id = $1
	  AND status NOT IN ('delivered', 'failed')`

	var count int
	if err := r.pool.QueryRow(ctx, query, chainID).Scan(&count); err != nil {
		return 0, fmt.Errorf("reports.CountPendingShipments: %w", err)
	}
	return count, nil
}

// CountStockAlerts cuenta las alertas de stock sin resolver de la cadena.
func (r *ReportsRepo) CountStockAlerts(ctx context.Context, chainID int64) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM alerts
	WHERE chain_id = $1
	  AND is_resolved = FALSE
	  AND alert_type IN ('low_stock', 'out_of_stock')`

	var count int
	if err := r.pool.QueryRow(ctx, query, chainID).Scan(&count); err != nil {
		return 0, fmt.Errorf("reports.CountStockAlerts: %w", err)
	}
	return count, nil
}

// ListProductionPlans devuelve los planes de la cadena por fecha de inicio.
func (r *ReportsRepo) ListProductionPlans(ctx context.Context, chainID int64) ([]entity.ProductionPlan, error) {
	const query = `
	SELECT id, chain_id, start_date, status
	FROM production_plans
	WHERE chain_id = $1
	ORDER BY start_date ASC`

	rows, err := r.pool.Query(ctx, query, chainID)
	if err != nil {
		return nil, fmt.Errorf("reports.ListProductionPlans: %w", err)
	}
	defer rows.Close()

	var plans []entity.ProductionPlan
	for rows.Next() {
		var p entity.ProductionPlan
		if err := rows.Scan(&p.ID, &p.ChainID, &p.StartDate, &p.Status); err != nil {
			return nil, fmt.Errorf("reports.ListProductionPlans scan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// ListProductionDetails devuelve todos los lotes de la cadena (vía su plan).
func (r *ReportsRepo) ListProductionDetails(ctx context.Context, chainID int64) ([]entity.ProductionDetail, error) {
	const query = `
	SELECT d.id, d.plan_id, d.item_id,
	       COALESCE(d.quantity_planned, 0), COALESCE(d.quantity_produced, 0),
	       COALESCE(d.status, ''), d.started_at, d.completed_at
	FROM production_details d
	JOIN production_plans p ON p.id = d.plan_id
	WHERE p.chain_id = $1
	ORDER BY d.id ASC`

	rows, err := r.pool.Query(ctx, query, chainID)
	if err != nil {
		return nil, fmt.Errorf("reports.ListProductionDetails: %w", err)
	}
	defer rows.Close()

	var details []entity.ProductionDetail
	for rows.Next() {
		var d entity.ProductionDetail
		if err := rows.Scan(
			&d.ID, &d.PlanID, &d.ItemID,
			&d.QuantityPlanned, &d.QuantityProduced,
			&d.Status, &d.StartedAt, &d.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("reports.ListProductionDetails scan: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListInventory devuelve existencias de la cadena; storeID 0 = todas las tiendas.
func (r *ReportsRepo) ListInventory(ctx context.Context, chainID, storeID int64) ([]entity.InventoryRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
	SELECT inv.id, inv.store_id, inv.item_id,
	       COALESCE(inv.quantity, 0), COALESCE(inv.min_stock_level, 0), COALESCE(inv.max_stock_level, 0)
	FROM inventory inv
	JOIN stores s ON s.id = inv.store_id
	WHERE s.chain_id = $1`)
	args := []any{chainID}

	if storeID != 0 {
		args = append(args, storeID)
		fmt.Fprintf(&sb, " AND inv.store_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY inv.item_id ASC, inv.store_id ASC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("reports.ListInventory: %w", err)
	}
	defer rows.Close()

	var records []entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.StoreID, &rec.ItemID,
			&rec.Quantity, &rec.MinStockLevel, &rec.MaxStockLevel,
		); err != nil {
			return nil, fmt.Errorf("reports.ListInventory scan: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListUnresolvedAlerts devuelve las alertas activas, más recientes primero.
func (r *ReportsRepo) ListUnresolvedAlerts(ctx context.Context, chainID int64) ([]entity.Alert, error) {
	const query = `
	SELECT id, chain_id, store_id, item_id, alert_type, COALESCE(message, ''), is_resolved, created_at
	FROM alerts
	WHERE chain_id = $1
	  AND is_resolved = FALSE
	ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, chainID)
	if err != nil {
		return nil, fmt.Errorf("reports.ListUnresolvedAlerts: %w", err)
	}
	defer rows.Close()

	var alerts []entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.ChainID, &a.StoreID, &a.ItemID,
			&a.AlertType, &a.Message, &a.IsResolved, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("reports.ListUnresolvedAlerts scan: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// GetItemNames resuelve nombres de ítems en una sola consulta.
func (r *ReportsRepo) GetItemNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.namesByID(ctx, "items", ids)
}

// GetStoreNames resuelve nombres de tiendas en una sola consulta.
func (r *ReportsRepo) GetStoreNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.namesByID(ctx, "stores", ids)
}

func (r *ReportsRepo) namesByID(ctx context.Context, table string, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	// table viene de los dos métodos de arriba, nunca de entrada del usuario.
	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE id = ANY($1)`, table)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("reports.namesByID(%s): %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("reports.namesByID(%s) scan: %w", table, err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
