package repository

import (
	"time"

	"github.com/revendix/revendix-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos (DIP). Solo inserción y lectura: el registro es inmutable.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
