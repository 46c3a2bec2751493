package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de un producto.
// TotalAmount siempre se recalcula como Quantity × UnitPrice; nunca se acepta del cliente.
// Si UnitPrice está por debajo del costo de compra del producto, Notes debe justificarlo.
type Sale struct {
	ID          string
	ProductID   string
	Quantity    int64 // entero positivo
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	IsPromo     bool
	SaleDate    time.Time
	Notes       string
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
