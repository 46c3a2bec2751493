package dto

import "time"

// AdjustStockRequest body para POST /api/products/:id/adjust-stock.
// Delta con signo; Reason obligatorio (máx. 200 caracteres).
type AdjustStockRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

// ResetStockRequest body para POST /api/products/:id/reset-stock.
// Valores absolutos: QuantitySold siempre; QuantityReceived opcional.
type ResetStockRequest struct {
	QuantitySold     int64  `json:"quantity_sold"`
	QuantityReceived *int64 `json:"quantity_received,omitempty"`
	Reason           string `json:"reason"`
}

// MovementResponse representación HTTP de un movimiento del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	PreviousQty int64     `json:"previous_qty"`
	NewQty      int64     `json:"new_qty"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ApplyMovementResponse resultado de un ajuste: producto actualizado + movimiento creado.
type ApplyMovementResponse struct {
	Product  ProductResponse  `json:"product"`
	Movement MovementResponse `json:"movement"`
}
