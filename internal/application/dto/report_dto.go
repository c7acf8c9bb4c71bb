package dto

import "github.com/shopspring/decimal"

// ReportQuery parámetros comunes de los endpoints de reportes.
// Las fechas son YYYY-MM-DD y el rango es inclusivo del día completo.
type ReportQuery struct {
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
	StoreID  int64  `query:"storeId"`
	GroupBy  string `query:"groupBy"` // day | week | month (default day)
}

// ExportQuery parámetros del endpoint de exportación.
type ExportQuery struct {
	ReportQuery
	Type   string `query:"type"`   // orders | production | inventory | delivery (default orders)
	Format string `query:"format"` // csv | pdf (default csv)
}

// ── Overview ──────────────────────────────────────────────────────────────────

// OverviewDTO estadísticas del dashboard en tiempo real.
type OverviewDTO struct {
	TotalOrders       int             `json:"totalOrders"`
	PendingOrders     int             `json:"pendingOrders"`
	CompletedOrders   int             `json:"completedOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	LowStockItems     int             `json:"lowStockItems"`
	PendingDeliveries int             `json:"pendingDeliveries"`
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// OrdersSeriesPoint punto de la serie temporal de pedidos.
type OrdersSeriesPoint struct {
	Date      string          `json:"date"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
	ByStatus  map[string]int  `json:"byStatus"`
}

// OrdersSummary resumen global del reporte de pedidos.
type OrdersSummary struct {
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Cancelled int             `json:"cancelled"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// OrdersReportDTO reporte de pedidos: resumen + serie.
type OrdersReportDTO struct {
	Summary OrdersSummary       `json:"summary"`
	Series  []OrdersSeriesPoint `json:"series"`
}

// ── Producción ────────────────────────────────────────────────────────────────

// ProductionSeriesPoint punto de la serie temporal de producción.
type ProductionSeriesPoint struct {
	Date     string          `json:"date"`
	Planned  decimal.Decimal `json:"planned"`
	Produced decimal.Decimal `json:"produced"`
	Batches  int             `json:"batches"`
}

// ProductionSummary resumen global de producción.
type ProductionSummary struct {
	TotalPlanned   decimal.Decimal `json:"totalPlanned"`
	TotalProduced  decimal.Decimal `json:"totalProduced"`
	PlansCompleted int             `json:"plansCompleted"`
}

// ProductionReportDTO reporte de producción: resumen + serie.
type ProductionReportDTO struct {
	Summary ProductionSummary       `json:"summary"`
	Series  []ProductionSeriesPoint `json:"series"`
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryItemDTO fila del reporte de inventario (lista plana, sin serie temporal).
type InventoryItemDTO struct {
	ItemID        int64           `json:"itemId"`
	ItemName      string          `json:"itemName"`
	StoreID       int64           `json:"storeId"`
	StoreName     string          `json:"storeName,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	Status        string          `json:"status"` // ok | low | out
}

// InventoryAlertDTO alerta sin resolver asociada al reporte de inventario.
type InventoryAlertDTO struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	AlertType string `json:"alertType"`
	StoreID   int64  `json:"storeId"`
}

// InventorySummary resumen global de inventario.
type InventorySummary struct {
	TotalItems      int `json:"totalItems"`
	LowStockCount   int `json:"lowStockCount"`
	OutOfStockCount int `json:"outOfStockCount"`
}

// InventoryReportDTO reporte de inventario: resumen + ítems + alertas.
type InventoryReportDTO struct {
	Summary InventorySummary    `json:"summary"`
	Items   []InventoryItemDTO  `json:"items"`
	Alerts  []InventoryAlertDTO `json:"alerts"`
}

// ── Entregas ──────────────────────────────────────────────────────────────────

// DeliverySeriesPoint punto de la serie temporal de entregas.
// AvgDeliveryHours se omite cuando el bucket no tiene envíos entregados con
// ambas marcas de tiempo.
type DeliverySeriesPoint struct {
	Date             string   `json:"date"`
	Total            int      `json:"total"`
	Delivered        int      `json:"delivered"`
	Failed           int      `json:"failed"`
	AvgDeliveryHours *float64 `json:"avgDeliveryHours,omitempty"`
}

// DeliverySummary resumen global de entregas. SuccessRate en %, un decimal,
// cero cuando no hay envíos.
type DeliverySummary struct {
	Total       int     `json:"total"`
	Delivered   int     `json:"delivered"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"successRate"`
}

// DeliveryReportDTO reporte de entregas: resumen + serie.
type DeliveryReportDTO struct {
	Summary DeliverySummary       `json:"summary"`
	Series  []DeliverySeriesPoint `json:"series"`
}
