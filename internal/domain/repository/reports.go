package repository

import (
	"context"
	"time"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// OrderReportFilter filtros de lectura de pedidos para reportes.
// From/To en nil significan "sin límite"; StoreID 0 significa "todas las tiendas".
type OrderReportFilter struct {
	ChainID int64
	From    *time.Time
	To      *time.Time
	StoreID int64
}

// ShipmentReportFilter filtros de lectura de envíos para reportes.
type ShipmentReportFilter struct {
	ChainID int64
	From    *time.Time
	To      *time.Time
}

// ReportsRepository fuente de filas para el subsistema de reportes.
// Todas las lecturas son read-only, filtradas en la base de datos y acotadas
// por chain_id (aislamiento multi-tenant). Una lista vacía no es error; un
// error de esta interfaz es un fallo del almacén de datos y aborta el reporte.
type ReportsRepository interface {
	// ListOrders devuelve pedidos ordenados por created_at ascendente.
	ListOrders(ctx context.Context, f OrderReportFilter) ([]entity.Order, error)

	// ListShipments devuelve envíos ordenados por shipped_at ascendente.
	ListShipments(ctx context.Context, f ShipmentReportFilter) ([]entity.Shipment, error)

	// CountPendingShipments cuenta los envíos no terminales (ni delivered ni failed).
	CountPendingShipments(ctx context.Context, chainID int64) (int, error)

	// CountStockAlerts cuenta las alertas low_stock / out_of_stock sin resolver.
	CountStockAlerts(ctx context.Context, chainID int64) (int, error)

	// ListProductionPlans devuelve los planes ordenados por start_date ascendente.
	ListProductionPlans(ctx context.Context, chainID int64) ([]entity.ProductionPlan, error)

	// ListProductionDetails devuelve todos los lotes de producción de la cadena.
	ListProductionDetails(ctx context.Context, chainID int64) ([]entity.ProductionDetail, error)

	// ListInventory devuelve las existencias; storeID 0 significa todas las tiendas.
	ListInventory(ctx context.Context, chainID, storeID int64) ([]entity.InventoryRecord, error)

	// ListUnresolvedAlerts devuelve las alertas sin resolver de la cadena.
	ListUnresolvedAlerts(ctx context.Context, chainID int64) ([]entity.Alert, error)

	// GetItemNames resuelve nombres de ítems en una sola consulta por lote.
	GetItemNames(ctx context.Context, ids []int64) (map[int64]string, error)

	// GetStoreNames resuelve nombres de tiendas en una sola consulta por lote.
	GetStoreNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
