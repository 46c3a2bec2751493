// Package sales implementa la reconciliación venta-ledger: crear, editar y
// borrar una venta mantiene QuantitySold y el historial de movimientos en
// lockstep, dentro de una única transacción por operación.
package sales

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

// SalesUseCase casos de uso de ventas.
type SalesUseCase struct {
	txRunner    ledger.SalesTxRunner
	ledgerUC    *ledger.StockLedgerUseCase
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	txRunner ledger.SalesTxRunner,
	ledgerUC *ledger.StockLedgerUseCase,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner:    txRunner,
		ledgerUC:    ledgerUC,
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Create registra una venta: valida stock y regla de venta a pérdida, incrementa
// QuantitySold, inserta la venta y registra un movimiento SALE negativo.
// Todo dentro de una transacción con la fila del producto bloqueada.
func (uc *SalesUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.ProductID == "" {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "obligatorio"}
	}
	if in.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}

	var created *entity.Sale
	err := uc.txRunner.RunSales(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		unitPrice := resolveUnitPrice(product, in.UnitPrice, in.IsPromo)
		if err := checkBelowCost(product, unitPrice, in.Notes); err != nil {
			return err
		}
		if available := product.CurrentStock(); in.Quantity > available {
			return &domain.InsufficientStockError{Available: available, Requested: in.Quantity}
		}

		now := time.Now()
		saleDate := now
		if in.SaleDate != nil {
			saleDate = *in.SaleDate
		}
		sale := &entity.Sale{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			TotalAmount: unitPrice.Mul(decimal.NewFromInt(in.Quantity)),
			IsPromo:     in.IsPromo,
			SaleDate:    saleDate,
			Notes:       in.Notes,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		// Salida de stock: delta negativo, referencia a la venta.
		if _, err := uc.ledgerUC.ApplyDeltaInTx(
			movRepo, productRepo,
			product.ID, -in.Quantity, entity.MovementTypeSALE,
			"vente:"+sale.ID, "", userID,
		); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update edita una venta. El ledger solo recibe el delta de cantidad
// (cantidad 2 -> 5 registra un SALE de -3), y la regla de venta a pérdida se
// revalida con el precio y las notas finales.
func (uc *SalesUseCase) Update(ctx context.Context, saleID, userID string, in dto.UpdateSaleRequest) (*entity.Sale, error) {
	var updated *entity.Sale
	err := uc.txRunner.RunSales(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := sale.Quantity
		if in.Quantity != nil {
			if *in.Quantity < 1 {
				return &domain.ValidationError{Field: "quantity", Reason: "debe ser un entero positivo"}
			}
			newQuantity = *in.Quantity
		}
		newPrice := sale.UnitPrice
		if in.UnitPrice != nil {
			newPrice = *in.UnitPrice
		}
		newNotes := sale.Notes
		if in.Notes != nil {
			newNotes = *in.Notes
		}
		if err := checkBelowCost(product, newPrice, newNotes); err != nil {
			return err
		}

		quantityDiff := newQuantity - sale.Quantity
		if quantityDiff > 0 {
			if available := product.CurrentStock(); quantityDiff > available {
				return &domain.InsufficientStockError{Available: available, Requested: quantityDiff}
			}
		}
		if quantityDiff != 0 {
			if _, err := uc.ledgerUC.ApplyDeltaInTx(
				movRepo, productRepo,
				product.ID, -quantityDiff, entity.MovementTypeSALE,
				"vente:"+sale.ID, "", userID,
			); err != nil {
				return err
			}
		}

		sale.Quantity = newQuantity
		sale.UnitPrice = newPrice
		sale.TotalAmount = newPrice.Mul(decimal.NewFromInt(newQuantity))
		sale.Notes = newNotes
		if in.IsPromo != nil {
			sale.IsPromo = *in.IsPromo
		}
		if in.SaleDate != nil {
			sale.SaleDate = *in.SaleDate
		}
		sale.UpdatedAt = time.Now()
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete borra una venta restaurando el stock: movimiento RETURN positivo por la
// cantidad vendida y baja de la fila de venta, en la misma transacción.
func (uc *SalesUseCase) Delete(ctx context.Context, saleID, userID string) error {
	return uc.txRunner.RunSales(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.ledgerUC.ApplyDeltaInTx(
			movRepo, productRepo,
			sale.ProductID, sale.Quantity, entity.MovementTypeRETURN,
			"annulation vente:"+sale.ID, "", userID,
		); err != nil {
			return err
		}
		return saleRepo.Delete(sale.ID)
	})
}

// GetByID obtiene una venta.
func (uc *SalesUseCase) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// List lista ventas con filtros de fecha/producto y paginación.
func (uc *SalesUseCase) List(ctx context.Context, from, to *time.Time, productID string, limit, offset int) ([]*entity.Sale, error) {
	return uc.saleRepo.List(from, to, productID, limit, offset)
}

// resolveUnitPrice usa el precio pedido, o el efectivo del producto
// (promo si la venta es promocional y existe precio promo).
func resolveUnitPrice(product *entity.Product, requested *decimal.Decimal, isPromo bool) decimal.Decimal {
	if requested != nil {
		return *requested
	}
	if isPromo && product.PromoPrice != nil {
		return *product.PromoPrice
	}
	return product.SellingPrice
}

// checkBelowCost exige notas no vacías cuando el precio queda por debajo del
// costo local de compra (justificación de venta a pérdida).
func checkBelowCost(product *entity.Product, unitPrice decimal.Decimal, notes string) error {
	if unitPrice.LessThan(product.PurchaseCostLocal) && notes == "" {
		return &domain.ValidationError{Field: "notes", Reason: "venta bajo costo requiere justificación"}
	}
	return nil
}
