package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revendix/revendix-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUnitCostLocal(t *testing.T) {
	t.Run("solo tasa de cambio", func(t *testing.T) {
		got := ledger.UnitCostLocal(d("3.5"), d("600"), decimal.Zero, 0)
		assert.True(t, got.Equal(d("2100")), "3.5 × 600 = 2100, got %s", got)
	})

	t.Run("con gastos prorrateados por unidad", func(t *testing.T) {
		// 2 × 600 + 30000/100 = 1500
		got := ledger.UnitCostLocal(d("2"), d("600"), d("30000"), 100)
		assert.True(t, got.Equal(d("1500")), "got %s", got)
	})

	t.Run("gastos sin unidades se ignoran", func(t *testing.T) {
		got := ledger.UnitCostLocal(d("2"), d("600"), d("30000"), 0)
		assert.True(t, got.Equal(d("1200")), "got %s", got)
	})
}

func TestMargin(t *testing.T) {
	assert.True(t, ledger.Margin(d("5000"), d("3000")).Equal(d("2000")))
	assert.True(t, ledger.Margin(d("2500"), d("3000")).Equal(d("-500")), "margen negativo en venta a pérdida")
}

func TestMarginPct(t *testing.T) {
	t.Run("margen sobre el costo", func(t *testing.T) {
		got := ledger.MarginPct(d("5000"), d("4000"))
		assert.True(t, got.Equal(d("25")), "got %s", got)
	})

	t.Run("costo cero devuelve cero", func(t *testing.T) {
		assert.True(t, ledger.MarginPct(d("5000"), decimal.Zero).IsZero())
	})
}
