package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest body para POST /api/shipments.
type CreateShipmentRequest struct {
	Reference    string          `json:"reference"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	CustomsFees  decimal.Decimal `json:"customs_fees"`
	ArrivalDate  *time.Time      `json:"arrival_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateShipmentRequest body para PUT /api/shipments/:id. Campos nil = sin cambio.
type UpdateShipmentRequest struct {
	Reference    *string          `json:"reference,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`
	ShippingCost *decimal.Decimal `json:"shipping_cost,omitempty"`
	CustomsFees  *decimal.Decimal `json:"customs_fees,omitempty"`
	ArrivalDate  *time.Time       `json:"arrival_date,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// ReceiveItemsRequest body para POST /api/shipments/:id/items.
// Suma Quantity unidades a QuantityReceived del producto, dentro del arrivage.
type ReceiveItemsRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ShipmentResponse representación HTTP de un arrivage.
type ShipmentResponse struct {
	ID           string          `json:"id"`
	Reference    string          `json:"reference"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	CustomsFees  decimal.Decimal `json:"customs_fees"`
	ArrivalDate  time.Time       `json:"arrival_date"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ShipmentListResponse listado paginado de arrivages.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
