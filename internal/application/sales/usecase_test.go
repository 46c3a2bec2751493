package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/application/ledger"
	"github.com/revendix/revendix-api/internal/application/sales"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateCounters(id string, received, sold int64) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantityReceived = received
	p.QuantitySold = sold
	return nil
}
func (f *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(string) (*entity.StockMovement, error) { return nil, nil }
func (f *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.sales[s.ID] = s; return nil }
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return f.sales[id], nil
}
func (f *fakeSaleRepo) Update(s *entity.Sale) error { f.sales[s.ID] = s; return nil }
func (f *fakeSaleRepo) Delete(id string) error      { delete(f.sales, id); return nil }
func (f *fakeSaleRepo) List(*time.Time, *time.Time, string, int, int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

type fakeSalesTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
	saleRepo    *fakeSaleRepo
}

func (f *fakeSalesTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.productRepo)
}

func (f *fakeSalesTxRunner) RunSales(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(f.movRepo, f.productRepo, f.saleRepo)
}

type fixture struct {
	uc      *sales.SalesUseCase
	product *entity.Product
	runner  *fakeSalesTxRunner
}

func newFixture(product *entity.Product) *fixture {
	runner := &fakeSalesTxRunner{
		movRepo:     &fakeMovementRepo{},
		productRepo: &fakeProductRepo{products: map[string]*entity.Product{product.ID: product}},
		saleRepo:    &fakeSaleRepo{sales: map[string]*entity.Sale{}},
	}
	ledgerUC := ledger.NewStockLedgerUseCase(runner)
	return &fixture{
		uc:      sales.NewSalesUseCase(runner, ledgerUC, runner.saleRepo, runner.productRepo),
		product: product,
		runner:  runner,
	}
}

func testProduct() *entity.Product {
	promo := decimal.NewFromInt(4000)
	return &entity.Product{
		ID:                "p1",
		Name:              "Montre connectée",
		PurchasePrice:     decimal.NewFromInt(5),
		PurchaseCostLocal: decimal.NewFromInt(3000),
		SellingPrice:      decimal.NewFromInt(5000),
		PromoPrice:        &promo,
		QuantityReceived:  10,
		QuantitySold:      0,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DecrementaStockYRegistraMovimientoSALE(t *testing.T) {
	f := newFixture(testProduct())

	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1",
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), sale.Quantity)
	assert.True(t, sale.UnitPrice.Equal(decimal.NewFromInt(5000)), "sin precio pedido usa el precio de venta")
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(15000)))

	assert.Equal(t, int64(7), f.product.CurrentStock())
	assert.Equal(t, int64(3), f.product.QuantitySold)

	require.Len(t, f.runner.movRepo.movements, 1)
	mov := f.runner.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeSALE, mov.Type)
	assert.Equal(t, int64(-3), mov.Quantity)
	assert.Contains(t, mov.Reference, sale.ID)
}

func TestCreateSale_PrecioPromo(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 1, IsPromo: true,
	})
	require.NoError(t, err)
	assert.True(t, sale.UnitPrice.Equal(decimal.NewFromInt(4000)), "venta promo usa el precio promo")
	assert.True(t, sale.IsPromo)
}

func TestCreateSale_StockInsuficiente(t *testing.T) {
	f := newFixture(testProduct()) // stock 10
	_, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 11,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(10), stockErr.Available)
	assert.Equal(t, int64(11), stockErr.Requested)

	assert.Empty(t, f.runner.saleRepo.sales, "la venta no debe persistirse")
	assert.Empty(t, f.runner.movRepo.movements, "el ledger no debe registrar nada")
}

func TestCreateSale_VenderTodoElStock(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sale.Quantity)
	assert.Equal(t, int64(0), f.product.CurrentStock())
}

func TestCreateSale_BajoCostoSinNotas_Rechazada(t *testing.T) {
	f := newFixture(testProduct()) // costo local 3000
	price := decimal.NewFromInt(2500)
	_, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 1, UnitPrice: &price,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta bajo costo sin notas debe rechazarse")
}

func TestCreateSale_BajoCostoConNotas_Aceptada(t *testing.T) {
	f := newFixture(testProduct())
	price := decimal.NewFromInt(2500)
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 1, UnitPrice: &price,
		Notes: "liquidation fin de saison",
	})
	require.NoError(t, err)
	assert.True(t, sale.UnitPrice.Equal(price))
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	f := newFixture(testProduct())
	for _, qty := range []int64{0, -1} {
		_, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{
			ProductID: "p1", Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: el ledger solo recibe el delta
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSale_AumentarCantidadRegistraDeltaNegativo(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	newQty := int64(5)
	updated, err := f.uc.Update(context.Background(), sale.ID, "u1", dto.UpdateSaleRequest{Quantity: &newQty})
	require.NoError(t, err)

	assert.Equal(t, int64(5), updated.Quantity)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(25000)), "total recalculado con la nueva cantidad")
	assert.Equal(t, int64(5), f.product.QuantitySold)

	// Primer movimiento: venta de 2. Segundo: delta -3 por la edición.
	require.Len(t, f.runner.movRepo.movements, 2)
	diff := f.runner.movRepo.movements[1]
	assert.Equal(t, entity.MovementTypeSALE, diff.Type)
	assert.Equal(t, int64(-3), diff.Quantity, "cantidad 2 -> 5 registra un SALE de -3")
}

func TestUpdateSale_ReducirCantidadRestauraStock(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	newQty := int64(2)
	_, err = f.uc.Update(context.Background(), sale.ID, "u1", dto.UpdateSaleRequest{Quantity: &newQty})
	require.NoError(t, err)

	assert.Equal(t, int64(2), f.product.QuantitySold)
	assert.Equal(t, int64(8), f.product.CurrentStock())

	diff := f.runner.movRepo.movements[1]
	assert.Equal(t, int64(3), diff.Quantity, "cantidad 5 -> 2 devuelve 3 unidades")
}

func TestUpdateSale_SinCambioDeCantidad_NoRegistraMovimiento(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	notes := "client fidèle"
	_, err = f.uc.Update(context.Background(), sale.ID, "u1", dto.UpdateSaleRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Len(t, f.runner.movRepo.movements, 1, "editar solo notas no toca el ledger")
}

func TestUpdateSale_AumentoSinStock_Rechazado(t *testing.T) {
	f := newFixture(testProduct()) // stock 10
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 8})
	require.NoError(t, err)

	newQty := int64(11) // diff 3 > stock restante 2
	_, err = f.uc.Update(context.Background(), sale.ID, "u1", dto.UpdateSaleRequest{Quantity: &newQty})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(8), f.product.QuantitySold, "los contadores no deben cambiar")
}

func TestUpdateSale_PrecioBajoCosto_RevalidaNotas(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	lowPrice := decimal.NewFromInt(1000)
	_, err = f.uc.Update(context.Background(), sale.ID, "u1", dto.UpdateSaleRequest{UnitPrice: &lowPrice})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "bajar el precio bajo costo sin notas debe rechazarse")
}

func TestUpdateSale_Inexistente(t *testing.T) {
	f := newFixture(testProduct())
	qty := int64(1)
	_, err := f.uc.Update(context.Background(), "no-existe", "u1", dto.UpdateSaleRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete: conservación del stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_RestauraStockConRETURN(t *testing.T) {
	f := newFixture(testProduct())
	sale, err := f.uc.Create(context.Background(), "u1", dto.CreateSaleRequest{ProductID: "p1", Quantity: 4})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), sale.ID, "u1"))

	assert.Empty(t, f.runner.saleRepo.sales, "la venta debe eliminarse")
	assert.Equal(t, int64(10), f.product.CurrentStock(), "crear+borrar debe dejar el stock como estaba")
	assert.Equal(t, int64(0), f.product.QuantitySold)

	require.Len(t, f.runner.movRepo.movements, 2, "el historial conserva ambos movimientos")
	ret := f.runner.movRepo.movements[1]
	assert.Equal(t, entity.MovementTypeRETURN, ret.Type)
	assert.Equal(t, int64(4), ret.Quantity)
}

func TestDeleteSale_Inexistente(t *testing.T) {
	f := newFixture(testProduct())
	err := f.uc.Delete(context.Background(), "no-existe", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
