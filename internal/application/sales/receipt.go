package sales

import (
	"context"

	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// ReceiptGenerator genera el PDF del recibo de una venta (maroto en infraestructura).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, product *entity.Product) ([]byte, error)
}

// ReceiptUseCase arma los datos y delega la generación del PDF.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, productRepo: productRepo, generator: generator}
}

// Generate devuelve los bytes del PDF del recibo de la venta.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(sale.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceipt(ctx, sale, product)
}
