package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// Clasificación de stock: out si qty <= 0, low si min > 0 y qty < min, ok en el resto.
// min = 0 significa "sin umbral" y nunca produce low.
func TestInventoryRecord_StockStatus(t *testing.T) {
	cases := []struct {
		name string
		qty  int64
		min  int64
		want entity.StockStatus
	}{
		{"agotado con qty cero", 0, 5, entity.StockStatusOut},
		{"agotado con qty negativa", -2, 5, entity.StockStatusOut},
		{"bajo el umbral", 3, 5, entity.StockStatusLow},
		{"sobre el umbral", 10, 5, entity.StockStatusOK},
		{"exactamente en el umbral no es low", 5, 5, entity.StockStatusOK},
		{"sin umbral nunca es low", 1, 0, entity.StockStatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := entity.InventoryRecord{
				Quantity:      decimal.NewFromInt(tc.qty),
				MinStockLevel: decimal.NewFromInt(tc.min),
			}
			assert.Equal(t, tc.want, rec.StockStatus())
		})
	}
}
