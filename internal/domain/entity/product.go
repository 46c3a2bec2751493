package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de CurrentStock y ReorderLevel.
const (
	StockStatusOut = "OUT" // sin unidades
	StockStatusLow = "LOW" // por debajo del punto de reorden
	StockStatusOK  = "OK"
)

// Product representa un artículo del catálogo de reventa.
// QuantityReceived y QuantitySold son contadores acumulados: el stock actual se
// deriva de ellos y SOLO se muta vía el motor de ledger (ventas, ajustes, reset).
type Product struct {
	ID                string
	Name              string
	CategoryID        string
	SupplierID        string          // origen de compra (retailer)
	ShipmentID        string          // arrivage con el que llegó (opcional)
	PurchasePrice     decimal.Decimal // precio de compra en moneda de origen
	PurchaseCostLocal decimal.Decimal // costo unitario en moneda local (vía tasa del arrivage)
	SellingPrice      decimal.Decimal
	PromoPrice        *decimal.Decimal // precio promocional opcional
	QuantityReceived  int64            // unidades recibidas acumuladas
	QuantitySold      int64            // unidades vendidas acumuladas
	ReorderLevel      int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CurrentStock devuelve QuantityReceived - QuantitySold. Función pura.
func (p *Product) CurrentStock() int64 {
	return p.QuantityReceived - p.QuantitySold
}

// StockStatus clasifica el stock actual: OUT (0), LOW (<= ReorderLevel) u OK.
func (p *Product) StockStatus() string {
	stock := p.CurrentStock()
	switch {
	case stock <= 0:
		return StockStatusOut
	case stock <= p.ReorderLevel:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}

// EffectivePrice devuelve PromoPrice si está definido y es menor; si no SellingPrice.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromoPrice != nil && p.PromoPrice.LessThan(p.SellingPrice) {
		return *p.PromoPrice
	}
	return p.SellingPrice
}
