package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido de tienda a cocina central.
type OrderStatus string

const (
	OrderStatusDraft        OrderStatus = "draft"
	OrderStatusSubmitted    OrderStatus = "submitted"
	OrderStatusConfirmed    OrderStatus = "confirmed"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusReady        OrderStatus = "ready"
	OrderStatusInDelivery   OrderStatus = "in_delivery"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"

	// OrderStatusPending estado legado que aún existe en datos antiguos;
	// el dashboard lo cuenta como "pedidos pendientes".
	OrderStatusPending OrderStatus = "pending"
)

// Valid verifica que el estado pertenece al conjunto enumerado.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusSubmitted, OrderStatusConfirmed,
		OrderStatusInProduction, OrderStatusReady, OrderStatusInDelivery,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusPending:
		return true
	}
	return false
}

// Order pedido de una tienda a la cocina central.
// El subsistema de reportes lo consume como snapshot de solo lectura.
type Order struct {
	ID            int64
	ChainID       int64 // tenant
	StoreID       int64
	OrderNumber   string
	Status        OrderStatus
	RequestedDate time.Time
	TotalAmount   decimal.NullDecimal // puede ser NULL mientras el pedido es borrador
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RevenueAmount devuelve el monto del pedido tratando NULL como cero.
func (o Order) RevenueAmount() decimal.Decimal {
	if !o.TotalAmount.Valid {
		return decimal.Zero
	}
	return o.TotalAmount.Decimal
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.NullDecimal
}
