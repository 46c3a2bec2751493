package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revendix/revendix-api/internal/domain/entity"
)

func TestProduct_CurrentStock(t *testing.T) {
	cases := []struct {
		name     string
		received int64
		sold     int64
		want     int64
	}{
		{"sin movimientos", 0, 0, 0},
		{"solo recibido", 10, 0, 10},
		{"parcialmente vendido", 10, 4, 6},
		{"todo vendido", 10, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{QuantityReceived: tc.received, QuantitySold: tc.sold}
			assert.Equal(t, tc.want, p.CurrentStock())
		})
	}
}

func TestProduct_StockStatus(t *testing.T) {
	cases := []struct {
		name         string
		received     int64
		sold         int64
		reorderLevel int64
		want         string
	}{
		{"agotado", 10, 10, 2, entity.StockStatusOut},
		{"en el umbral", 10, 8, 2, entity.StockStatusLow},
		{"justo encima del umbral", 10, 7, 2, entity.StockStatusOK},
		{"holgado", 10, 0, 2, entity.StockStatusOK},
		{"umbral cero y stock uno", 10, 9, 0, entity.StockStatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{
				QuantityReceived: tc.received,
				QuantitySold:     tc.sold,
				ReorderLevel:     tc.reorderLevel,
			}
			assert.Equal(t, tc.want, p.StockStatus())
		})
	}
}

func TestProduct_EffectivePrice(t *testing.T) {
	selling := decimal.NewFromInt(5000)

	t.Run("sin promo usa precio de venta", func(t *testing.T) {
		p := &entity.Product{SellingPrice: selling}
		assert.True(t, p.EffectivePrice().Equal(selling))
	})

	t.Run("promo menor gana", func(t *testing.T) {
		promo := decimal.NewFromInt(4000)
		p := &entity.Product{SellingPrice: selling, PromoPrice: &promo}
		assert.True(t, p.EffectivePrice().Equal(promo))
	})

	t.Run("promo mayor o igual se ignora", func(t *testing.T) {
		promo := decimal.NewFromInt(6000)
		p := &entity.Product{SellingPrice: selling, PromoPrice: &promo}
		assert.True(t, p.EffectivePrice().Equal(selling))
	})
}
