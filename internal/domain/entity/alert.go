package entity

import "time"

// AlertType tipo de alerta de inventario.
type AlertType string

const (
	AlertTypeLowStock   AlertType = "low_stock"
	AlertTypeOutOfStock AlertType = "out_of_stock"
	AlertTypeExpiring   AlertType = "expiring"
)

// Alert alerta generada sobre un ítem de una tienda (stock bajo, agotado, etc.).
type Alert struct {
	ID         int64
	ChainID    int64
	StoreID    int64
	ItemID     int64
	AlertType  AlertType
	Message    string
	IsResolved bool
	CreatedAt  time.Time
}
