package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categoría de productos del catálogo.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Product producto del catálogo que las tiendas pueden pedir a la cocina central.
type Product struct {
	ID          int64
	ChainID     int64
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.NullDecimal
	Unit        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
