package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest body para crear/actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierRequest body para crear/actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
	Country string `json:"country,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Country   string    `json:"country,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseRequest body para crear/actualizar un gasto.
type ExpenseRequest struct {
	Label      string          `json:"label"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	ShipmentID string          `json:"shipment_id,omitempty"`
	Date       *time.Time      `json:"date,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// ExpenseResponse representación HTTP de un gasto.
type ExpenseResponse struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	ShipmentID string          `json:"shipment_id,omitempty"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
