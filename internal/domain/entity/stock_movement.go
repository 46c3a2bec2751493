package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeSALE       = "SALE"       // salida por venta (delta negativo)
	MovementTypeRETURN     = "RETURN"     // devolución al borrar/reducir una venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (daño, recuento, hallazgo)
	MovementTypeRESET      = "RESET"      // reset absoluto de contadores
)

// StockMovement es el registro inmutable de auditoría de cada cambio de stock.
// Invariante: NewQty == PreviousQty + Quantity, con PreviousQty igual al stock
// observado dentro de la misma transacción que aplicó el cambio.
// Nunca se actualiza ni se borra.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // SALE, RETURN, ADJUSTMENT, RESET
	Quantity    int64  // delta con signo sobre el stock actual
	PreviousQty int64
	NewQty      int64
	Reference   string // venta, motivo de ajuste, etc.
	Notes       string
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
