package entity

import "github.com/shopspring/decimal"

// StockStatus clasificación derivada del nivel de stock de un ítem en una tienda.
type StockStatus string

const (
	StockStatusOK  StockStatus = "ok"
	StockStatusLow StockStatus = "low"
	StockStatusOut StockStatus = "out"
)

// InventoryRecord existencias de un ítem en una tienda, con umbrales de reposición.
type InventoryRecord struct {
	ID            int64
	StoreID       int64
	ItemID        int64
	Quantity      decimal.Decimal
	MinStockLevel decimal.Decimal
	MaxStockLevel decimal.Decimal
}

// StockStatus clasifica el registro:
//   - out si quantity <= 0
//   - low si min > 0 y quantity < min (min = 0 significa "sin umbral")
//   - ok en el resto de casos
func (r InventoryRecord) StockStatus() StockStatus {
	if !r.Quantity.IsPositive() {
		return StockStatusOut
	}
	if r.MinStockLevel.IsPositive() && r.Quantity.LessThan(r.MinStockLevel) {
		return StockStatusLow
	}
	return StockStatusOK
}
