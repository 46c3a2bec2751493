package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/application/ledger"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// ShipmentUseCase casos de uso de arrivages: CRUD más la recepción de unidades,
// que es la única fuente de incrementos de QuantityReceived.
type ShipmentUseCase struct {
	repo     repository.ShipmentRepository
	txRunner ledger.TxRunner
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, txRunner ledger.TxRunner) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo, txRunner: txRunner}
}

// Create registra un arrivage.
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	if in.Reference == "" {
		return nil, &domain.ValidationError{Field: "reference", Reason: "obligatorio"}
	}
	if in.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.ValidationError{Field: "exchange_rate", Reason: "debe ser positiva"}
	}
	now := time.Now()
	arrival := now
	if in.ArrivalDate != nil {
		arrival = *in.ArrivalDate
	}
	shipment := &entity.Shipment{
		ID:           uuid.New().String(),
		Reference:    in.Reference,
		SupplierID:   in.SupplierID,
		ExchangeRate: in.ExchangeRate,
		ShippingCost: in.ShippingCost,
		CustomsFees:  in.CustomsFees,
		ArrivalDate:  arrival,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// GetByID obtiene un arrivage.
func (uc *ShipmentUseCase) GetByID(id string) (*entity.Shipment, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return shipment, nil
}

// Update actualiza un arrivage. Campos nil = sin cambio.
func (uc *ShipmentUseCase) Update(id string, in dto.UpdateShipmentRequest) (*entity.Shipment, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Reference != nil {
		shipment.Reference = *in.Reference
	}
	if in.SupplierID != nil {
		shipment.SupplierID = *in.SupplierID
	}
	if in.ExchangeRate != nil {
		if in.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return nil, &domain.ValidationError{Field: "exchange_rate", Reason: "debe ser positiva"}
		}
		shipment.ExchangeRate = *in.ExchangeRate
	}
	if in.ShippingCost != nil {
		shipment.ShippingCost = *in.ShippingCost
	}
	if in.CustomsFees != nil {
		shipment.CustomsFees = *in.CustomsFees
	}
	if in.ArrivalDate != nil {
		shipment.ArrivalDate = *in.ArrivalDate
	}
	if in.Notes != nil {
		shipment.Notes = *in.Notes
	}
	shipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// List lista arrivages con paginación.
func (uc *ShipmentUseCase) List(limit, offset int) ([]*entity.Shipment, error) {
	return uc.repo.List(limit, offset)
}

// Delete elimina un arrivage sin productos asociados (la FK protege el resto).
func (uc *ShipmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ReceiveItems suma unidades recibidas a un producto dentro del arrivage.
// Incrementa QuantityReceived en transacción con la fila bloqueada; la recepción
// no pasa por el ledger de movimientos (no es venta, ajuste ni reset).
func (uc *ShipmentUseCase) ReceiveItems(ctx context.Context, shipmentID string, in dto.ReceiveItemsRequest) (*entity.Product, error) {
	if in.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}
	shipment, err := uc.repo.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}

	var received *entity.Product
	err = uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.QuantityReceived += in.Quantity
		if err := productRepo.UpdateCounters(product.ID, product.QuantityReceived, product.QuantitySold); err != nil {
			return err
		}
		received = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return received, nil
}
