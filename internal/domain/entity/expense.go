package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto aceptadas.
const (
	ExpenseCategoryShipping  = "SHIPPING"
	ExpenseCategoryCustoms   = "CUSTOMS"
	ExpenseCategoryPackaging = "PACKAGING"
	ExpenseCategoryMarketing = "MARKETING"
	ExpenseCategoryOther     = "OTHER"
)

// Expense es un gasto del negocio, opcionalmente imputado a un arrivage.
type Expense struct {
	ID         string
	Label      string
	Category   string // SHIPPING, CUSTOMS, PACKAGING, MARKETING, OTHER
	Amount     decimal.Decimal
	ShipmentID string // imputación a un arrivage (opcional)
	Date       time.Time
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
