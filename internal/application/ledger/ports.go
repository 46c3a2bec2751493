package ledger

import (
	"context"

	"github.com/revendix/revendix-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de ledger: contador y
// movimiento se escriben juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// SalesTxRunner añade el repositorio de ventas a la transacción (para la
// reconciliación venta-ledger).
type SalesTxRunner interface {
	TxRunner
	RunSales(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
