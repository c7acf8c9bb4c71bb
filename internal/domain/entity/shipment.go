package entity

import "time"

// ShipmentStatus estado de un envío de cocina central a tienda.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusFailed    ShipmentStatus = "failed"
)

// Terminal indica si el envío ya no está en curso (entregado o fallido).
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusFailed
}

// Shipment envío asociado a un pedido. ShippedAt y DeliveredAt son nulos
// mientras el envío no ha salido / no ha llegado.
type Shipment struct {
	ID          int64
	ChainID     int64
	OrderID     int64
	Status      ShipmentStatus
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// ReportDate fecha con la que el envío entra a las series temporales:
// fecha de salida, con fallback a la fecha de entrega.
func (s Shipment) ReportDate() time.Time {
	if s.ShippedAt != nil {
		return *s.ShippedAt
	}
	if s.DeliveredAt != nil {
		return *s.DeliveredAt
	}
	return time.Time{}
}

// DeliveryDuration devuelve la duración del envío si hay ambas marcas de
// tiempo y el envío fue entregado; ok=false en caso contrario.
func (s Shipment) DeliveryDuration() (d time.Duration, ok bool) {
	if s.Status != ShipmentStatusDelivered || s.ShippedAt == nil || s.DeliveredAt == nil {
		return 0, false
	}
	return s.DeliveredAt.Sub(*s.ShippedAt), true
}
