package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// MaxReasonLength longitud máxima del motivo de un ajuste manual.
const MaxReasonLength = 200

// StockLedgerUseCase es la única fuente de verdad sobre el stock actual de un
// producto, con historial append-only del porqué de cada cambio.
// Toda mutación corre en UNA transacción con bloqueo de fila (SELECT FOR UPDATE):
// recalcular, validar, mutar contadores y registrar el movimiento, todo o nada.
type StockLedgerUseCase struct {
	txRunner TxRunner
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner}
}

// MovementInput entrada para ApplyMovement.
type MovementInput struct {
	ProductID string
	Delta     int64  // distinto de cero, con signo
	Type      string // ADJUSTMENT o RETURN; las ventas usan ApplySaleInTx
	Reason    string // obligatorio
	Notes     string
	UserID    string
}

// MovementResult producto actualizado + movimiento creado.
type MovementResult struct {
	Product  *entity.Product
	Movement *entity.StockMovement
}

// ApplyMovement aplica un delta de stock de forma transaccional.
// Precondición del motor: el stock se recalcula desde el estado persistido DENTRO
// de la misma transacción que escribe (evita lost updates entre escritores).
// Si stock+delta < 0 falla con InsufficientStockError y no se escribe nada.
func (uc *StockLedgerUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if err := validateMovementInput(input); err != nil {
		return nil, err
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		r, err := applyDelta(movRepo, productRepo, input.ProductID, input.Delta, input.Type, input.Reason, input.Notes, input.UserID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResetStock fija los contadores en valores absolutos (recuento físico, corrección
// masiva). Emite un único movimiento RESET con el antes/después del stock.
func (uc *StockLedgerUseCase) ResetStock(ctx context.Context, productID string, quantitySold int64, quantityReceived *int64, reason, userID string) (*MovementResult, error) {
	if reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Reason: "motivo obligatorio"}
	}
	if quantitySold < 0 || (quantityReceived != nil && *quantityReceived < 0) {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "los contadores no pueden ser negativos"}
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newReceived := product.QuantityReceived
		if quantityReceived != nil {
			newReceived = *quantityReceived
		}
		if quantitySold > newReceived {
			return &domain.ValidationError{Field: "quantity_sold", Reason: "vendido no puede superar lo recibido"}
		}

		prevStock := product.CurrentStock()
		product.QuantityReceived = newReceived
		product.QuantitySold = quantitySold
		newStock := product.CurrentStock()

		if err := productRepo.UpdateCounters(product.ID, product.QuantityReceived, product.QuantitySold); err != nil {
			return err
		}
		mov := newMovement(product.ID, entity.MovementTypeRESET, newStock-prevStock, prevStock, newStock, reason, "", userID)
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = &MovementResult{Product: product, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyDeltaInTx aplica un delta usando repositorios ya atados a la transacción del
// caller (reconciliación de ventas: misma tx que inserta/actualiza la venta).
func (uc *StockLedgerUseCase) ApplyDeltaInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID string, delta int64, movType, reference, notes, userID string,
) (*MovementResult, error) {
	return applyDelta(movRepo, productRepo, productID, delta, movType, reference, notes, userID)
}

// applyDelta núcleo compartido: bloquea la fila del producto, valida el stock
// resultante, muta los contadores y registra exactamente un movimiento.
func applyDelta(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID string, delta int64, movType, reference, notes, userID string,
) (*MovementResult, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	prevStock := product.CurrentStock()
	if prevStock+delta < 0 {
		return nil, &domain.InsufficientStockError{Available: prevStock, Requested: -delta}
	}

	if delta < 0 {
		// Salida: se acumula en lo vendido.
		product.QuantitySold += -delta
	} else {
		// Entrada: primero deshace vendido; el excedente (inventario hallado)
		// se suma a lo recibido para mantener 0 <= vendido <= recibido.
		if delta <= product.QuantitySold {
			product.QuantitySold -= delta
		} else {
			product.QuantityReceived += delta - product.QuantitySold
			product.QuantitySold = 0
		}
	}
	newStock := product.CurrentStock()

	if err := productRepo.UpdateCounters(product.ID, product.QuantityReceived, product.QuantitySold); err != nil {
		return nil, err
	}
	mov := newMovement(product.ID, movType, delta, prevStock, newStock, reference, notes, userID)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return &MovementResult{Product: product, Movement: mov}, nil
}

func newMovement(productID, movType string, delta, prevQty, newQty int64, reference, notes, userID string) *entity.StockMovement {
	return &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Type:        movType,
		Quantity:    delta,
		PreviousQty: prevQty,
		NewQty:      newQty,
		Reference:   reference,
		Notes:       notes,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
}

func validateMovementInput(input MovementInput) error {
	if input.ProductID == "" {
		return &domain.ValidationError{Field: "product_id", Reason: "obligatorio"}
	}
	if input.Delta == 0 {
		return &domain.ValidationError{Field: "delta", Reason: "debe ser distinto de cero"}
	}
	switch input.Type {
	case entity.MovementTypeADJUSTMENT, entity.MovementTypeRETURN:
	default:
		return &domain.ValidationError{Field: "type", Reason: "tipo de movimiento no permitido"}
	}
	if input.Reason == "" {
		return &domain.ValidationError{Field: "reason", Reason: "motivo obligatorio"}
	}
	if input.Type == entity.MovementTypeADJUSTMENT && len([]rune(input.Reason)) > MaxReasonLength {
		return &domain.ValidationError{Field: "reason", Reason: "máximo 200 caracteres"}
	}
	return nil
}
