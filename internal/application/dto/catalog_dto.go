package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderQuery filtros del listado de pedidos.
type OrderQuery struct {
	PageRequest
	StoreID int64 `query:"storeId"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID          int64               `json:"id"`
	ProductID   int64               `json:"productId"`
	ProductName string              `json:"productName"`
	Quantity    decimal.Decimal     `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unitPrice"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID            int64               `json:"id"`
	StoreID       int64               `json:"storeId"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	RequestedDate string              `json:"requestedDate"`
	TotalAmount   decimal.NullDecimal `json:"totalAmount"`
	Notes         string              `json:"notes,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// OrderListResponse página de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StoreResponse tienda en respuestas.
type StoreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Type     string `json:"type"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ProductResponse producto del catálogo en respuestas.
type ProductResponse struct {
	ID          int64               `json:"id"`
	CategoryID  int64               `json:"categoryId"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       decimal.NullDecimal `json:"price"`
	Unit        string              `json:"unit,omitempty"`
	IsActive    bool                `json:"isActive"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
