package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lecturas del listado de pedidos.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// ListByChain lista pedidos paginados, más recientes primero, con el total
// de la misma condición para armar la paginación.
func (r *OrderRepo) ListByChain(ctx context.Context, chainID, storeID int64, limit, offset int) ([]entity.Order, int, error) {
	where := "WHERE chain_id = $1"
	args := []any{chainID}
	if storeID != 0 {
		args = append(args, storeID)
		where += fmt.Sprintf(" AND store_id = $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM orders " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("orders.ListByChain count: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`
	SELECT id, chain_id, store_id, order_number, status,
	       COALESCE(requested_date, '0001-01-01'::date),
	       total_amount, COALESCE(notes, ''), created_at, updated_at
	FROM orders `)
	sb.WriteString(where)
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("orders.ListByChain: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.ChainID, &o.StoreID, &o.OrderNumber, &o.Status,
			&o.RequestedDate, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("orders.ListByChain scan: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// GetByID devuelve el pedido con sus líneas; (nil, nil, nil) si no existe o
// pertenece a otra cadena.
func (r *OrderRepo) GetByID(ctx context.Context, chainID, id int64) (*entity.Order, []entity.OrderItem, error) {
	const orderQuery = `
	SELECT id, chain_id, store_id, order_number, status,
	       COALESCE(requested_date, '0001-01-01'::date),
	       total_amount, COALESCE(notes, ''), created_at, updated_at
	FROM orders
	WHERE chain_id = $1 AND id = $2`

	var o entity.Order
	err := r.pool.QueryRow(ctx, orderQuery, chainID, id).Scan(
		&o.ID, &o.ChainID, &o.StoreID, &o.OrderNumber, &o.Status,
		&o.RequestedDate, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("orders.GetByID: %w", err)
	}

	const itemsQuery = `
	SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.unit_price
	FROM order_items oi
	LEFT JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id = $1
	ORDER BY oi.id ASC`

	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("orders.GetByID items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, nil, fmt.Errorf("orders.GetByID items scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("orders.GetByID items rows: %w", err)
	}
	return &o, items, nil
}
