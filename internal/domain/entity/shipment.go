package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment representa un arrivage: un lote de mercancía recibido en una compra.
// Es la única fuente de incrementos de QuantityReceived en los productos.
// ExchangeRate convierte el precio de compra (moneda de origen) a moneda local.
type Shipment struct {
	ID           string
	Reference    string // código legible del arrivage
	SupplierID   string
	ExchangeRate decimal.Decimal
	ShippingCost decimal.Decimal // flete del lote, moneda local
	CustomsFees  decimal.Decimal
	ArrivalDate  time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
