package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	domledger "github.com/revendix/revendix-api/internal/domain/ledger"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Los contadores de stock NO se
// tocan aquí (salvo el alta inicial): se manejan vía ledger.
type ProductUseCase struct {
	repo         repository.ProductRepository
	shipmentRepo repository.ShipmentRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	shipmentRepo repository.ShipmentRepository,
	movementRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, shipmentRepo: shipmentRepo, movementRepo: movementRepo}
}

// Create crea un producto. Si no llega el costo local y el producto pertenece a
// un arrivage, se deriva con la tasa de cambio del arrivage.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "obligatorio"}
	}
	if in.QuantityReceived < 0 || in.ReorderLevel < 0 {
		return nil, &domain.ValidationError{Field: "quantity_received", Reason: "no puede ser negativo"}
	}
	if in.SellingPrice.LessThan(decimal.Zero) || in.PurchasePrice.LessThan(decimal.Zero) {
		return nil, &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}

	costLocal := decimal.Zero
	if in.PurchaseCostLocal != nil {
		costLocal = *in.PurchaseCostLocal
	} else if in.ShipmentID != "" {
		shipment, err := uc.shipmentRepo.GetByID(in.ShipmentID)
		if err != nil {
			return nil, err
		}
		if shipment == nil {
			return nil, domain.ErrNotFound
		}
		costLocal = domledger.UnitCostLocal(in.PurchasePrice, shipment.ExchangeRate, decimal.Zero, 0)
	} else {
		costLocal = in.PurchasePrice
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		CategoryID:        in.CategoryID,
		SupplierID:        in.SupplierID,
		ShipmentID:        in.ShipmentID,
		PurchasePrice:     in.PurchasePrice,
		PurchaseCostLocal: costLocal,
		SellingPrice:      in.SellingPrice,
		PromoPrice:        in.PromoPrice,
		QuantityReceived:  in.QuantityReceived,
		QuantitySold:      0,
		ReorderLevel:      in.ReorderLevel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update actualiza los atributos del catálogo. No permite modificar contadores de stock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "no puede quedar vacío"}
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.PromoPrice != nil {
		product.PromoPrice = in.PromoPrice
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, &domain.ValidationError{Field: "reorder_level", Reason: "no puede ser negativo"}
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(filter, limit, offset)
}

// Delete elimina un producto. Si tiene ventas o movimientos referenciándolo la FK
// lo impide y se devuelve ErrConflict.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Movements devuelve el historial del ledger para un producto.
func (uc *ProductUseCase) Movements(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
}
