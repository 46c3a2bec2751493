package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name              string           `json:"name"`
	CategoryID        string           `json:"category_id"`
	SupplierID        string           `json:"supplier_id,omitempty"`
	ShipmentID        string           `json:"shipment_id,omitempty"`
	PurchasePrice     decimal.Decimal  `json:"purchase_price"`
	PurchaseCostLocal *decimal.Decimal `json:"purchase_cost_local,omitempty"` // si falta se deriva de la tasa del arrivage
	SellingPrice      decimal.Decimal  `json:"selling_price"`
	PromoPrice        *decimal.Decimal `json:"promo_price,omitempty"`
	QuantityReceived  int64            `json:"quantity_received"`
	ReorderLevel      int64            `json:"reorder_level"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil = sin cambio.
// Los contadores de stock NO se tocan aquí: solo vía ventas, ajustes o reset.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	PromoPrice    *decimal.Decimal `json:"promo_price,omitempty"`
	ReorderLevel  *int64           `json:"reorder_level,omitempty"`
}

// ProductResponse representación HTTP de un producto, con derivados de stock.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	CategoryID        string           `json:"category_id"`
	SupplierID        string           `json:"supplier_id,omitempty"`
	ShipmentID        string           `json:"shipment_id,omitempty"`
	PurchasePrice     decimal.Decimal  `json:"purchase_price"`
	PurchaseCostLocal decimal.Decimal  `json:"purchase_cost_local"`
	SellingPrice      decimal.Decimal  `json:"selling_price"`
	PromoPrice        *decimal.Decimal `json:"promo_price,omitempty"`
	QuantityReceived  int64            `json:"quantity_received"`
	QuantitySold      int64            `json:"quantity_sold"`
	CurrentStock      int64            `json:"current_stock"`
	StockStatus       string           `json:"stock_status"`
	ReorderLevel      int64            `json:"reorder_level"`
	MarginPct         decimal.Decimal  `json:"margin_pct"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
