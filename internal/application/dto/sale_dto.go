package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
// UnitPrice opcional: si falta se usa el precio efectivo del producto
// (promo si IsPromo, si no el precio de venta).
type CreateSaleRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	IsPromo   bool             `json:"is_promo"`
	SaleDate  *time.Time       `json:"sale_date,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// UpdateSaleRequest body para PUT /api/sales/:id. Campos nil = sin cambio.
type UpdateSaleRequest struct {
	Quantity  *int64           `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	IsPromo   *bool            `json:"is_promo,omitempty"`
	SaleDate  *time.Time       `json:"sale_date,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsPromo     bool            `json:"is_promo"`
	SaleDate    time.Time       `json:"sale_date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
