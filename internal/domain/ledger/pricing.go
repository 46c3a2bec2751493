// Package ledger contiene la aritmética pura de costos y márgenes
// (servicios de dominio, sin efectos).
package ledger

import "github.com/shopspring/decimal"

// UnitCostLocal convierte el precio de compra (moneda de origen) a moneda local
// con la tasa del arrivage y le suma la parte proporcional de gastos del lote.
// CostoLocal = PrecioOrigen * Tasa + (Gastos / UnidadesDelLote)
func UnitCostLocal(purchasePrice, exchangeRate, batchFees decimal.Decimal, batchUnits int64) decimal.Decimal {
	cost := purchasePrice.Mul(exchangeRate)
	if batchUnits > 0 && batchFees.GreaterThan(decimal.Zero) {
		cost = cost.Add(batchFees.Div(decimal.NewFromInt(batchUnits)))
	}
	return cost
}

// Margin devuelve la ganancia unitaria: precio de venta menos costo local.
func Margin(sellingPrice, unitCostLocal decimal.Decimal) decimal.Decimal {
	return sellingPrice.Sub(unitCostLocal)
}

// MarginPct devuelve el margen porcentual sobre el costo. 0 si el costo es 0.
func MarginPct(sellingPrice, unitCostLocal decimal.Decimal) decimal.Decimal {
	if unitCostLocal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return sellingPrice.Sub(unitCostLocal).Div(unitCostLocal).Mul(decimal.NewFromInt(100))
}
