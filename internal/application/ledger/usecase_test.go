package ledger_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendix/revendix-api/internal/application/ledger"
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

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
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
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMovementRepo) ListByProduct(productID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los fakes directamente: los tests verifican la lógica del
// motor, no la transaccionalidad de PostgreSQL.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.productRepo)
}

func productWithStock(received, sold int64) *entity.Product {
	return &entity.Product{
		ID:                "p1",
		Name:              "Coque iPhone",
		PurchasePrice:     decimal.NewFromInt(3),
		PurchaseCostLocal: decimal.NewFromInt(2000),
		SellingPrice:      decimal.NewFromInt(5000),
		QuantityReceived:  received,
		QuantitySold:      sold,
		ReorderLevel:      2,
	}
}

func newLedgerUC(p *entity.Product) (*ledger.StockLedgerUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		movRepo:     &fakeMovementRepo{},
		productRepo: newFakeProductRepo(p),
	}
	return ledger.NewStockLedgerUseCase(runner), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement: ajustes manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_AjusteNegativoDecrementaStock(t *testing.T) {
	product := productWithStock(10, 3) // stock 7
	uc, runner := newLedgerUC(product)

	result, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Delta:     -2,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    "casse pendant transport",
		UserID:    "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Product.CurrentStock(), "stock 7 - 2 = 5")
	assert.Equal(t, int64(5), result.Product.QuantitySold, "el delta negativo se acumula en lo vendido")
	assert.Equal(t, int64(10), result.Product.QuantityReceived, "lo recibido no cambia")

	require.Len(t, runner.movRepo.movements, 1)
	mov := runner.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeADJUSTMENT, mov.Type)
	assert.Equal(t, int64(-2), mov.Quantity)
	assert.Equal(t, int64(7), mov.PreviousQty)
	assert.Equal(t, int64(5), mov.NewQty)
}

func TestApplyMovement_VenderHastaCero(t *testing.T) {
	// Caso límite: delta que deja el stock exactamente en 0 debe pasar.
	product := productWithStock(5, 2) // stock 3
	uc, _ := newLedgerUC(product)

	result, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Delta:     -3,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    "inventaire physique",
		UserID:    "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Product.CurrentStock())
	assert.Equal(t, entity.StockStatusOut, result.Product.StockStatus())
}

func TestApplyMovement_StockInsuficiente_NoEscribeNada(t *testing.T) {
	product := productWithStock(5, 2) // stock 3
	uc, runner := newLedgerUC(product)

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Delta:     -4,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    "perte",
		UserID:    "u1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(3), stockErr.Available)
	assert.Equal(t, int64(4), stockErr.Requested)

	// Los contadores no deben haberse tocado y el ledger queda vacío.
	assert.Equal(t, int64(5), product.QuantityReceived)
	assert.Equal(t, int64(2), product.QuantitySold)
	assert.Empty(t, runner.movRepo.movements)
}

func TestApplyMovement_AjustePositivoDeshaceVendidoPrimero(t *testing.T) {
	product := productWithStock(10, 4) // stock 6
	uc, _ := newLedgerUC(product)

	result, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Delta:     3,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    "retour client comptabilisé deux fois",
		UserID:    "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Product.CurrentStock())
	assert.Equal(t, int64(1), result.Product.QuantitySold, "el delta positivo descuenta primero lo vendido")
	assert.Equal(t, int64(10), result.Product.QuantityReceived)
}

func TestApplyMovement_AjustePositivoExcedenteVaARecibido(t *testing.T) {
	// Delta mayor que lo vendido: el excedente se suma a lo recibido para
	// mantener 0 <= vendido <= recibido.
	product := productWithStock(10, 2) // stock 8
	uc, _ := newLedgerUC(product)

	result, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1",
		Delta:     5,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    "unités retrouvées en stock",
		UserID:    "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), result.Product.CurrentStock())
	assert.Equal(t, int64(0), result.Product.QuantitySold)
	assert.Equal(t, int64(13), result.Product.QuantityReceived)
}

func TestApplyMovement_InvarianteSnapshot(t *testing.T) {
	// Todo movimiento debe cumplir NewQty == PreviousQty + Quantity.
	product := productWithStock(20, 5)
	uc, runner := newLedgerUC(product)

	for _, delta := range []int64{-3, 2, -1, 4} {
		_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
			ProductID: "p1",
			Delta:     delta,
			Type:      entity.MovementTypeADJUSTMENT,
			Reason:    "test",
			UserID:    "u1",
		})
		require.NoError(t, err)
	}
	for _, m := range runner.movRepo.movements {
		assert.Equal(t, m.PreviousQty+m.Quantity, m.NewQty,
			"snapshot inconsistente en movimiento %s", m.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_DeltaCero_Rechazado(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(5, 0))
	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1", Delta: 0, Type: entity.MovementTypeADJUSTMENT, Reason: "x", UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_SinMotivo_Rechazado(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(5, 0))
	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1", Delta: -1, Type: entity.MovementTypeADJUSTMENT, Reason: "", UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_MotivoDemasiadoLargo_Rechazado(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(5, 0))
	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1", Delta: -1, Type: entity.MovementTypeADJUSTMENT,
		Reason: strings.Repeat("a", ledger.MaxReasonLength+1), UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_TipoVentaDirecta_Rechazado(t *testing.T) {
	// Las ventas pasan por el caso de uso de ventas, nunca por ApplyMovement.
	uc, _ := newLedgerUC(productWithStock(5, 0))
	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "p1", Delta: -1, Type: entity.MovementTypeSALE, Reason: "x", UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(5, 0))
	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "desconocido", Delta: -1, Type: entity.MovementTypeADJUSTMENT, Reason: "x", UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetStock
// ──────────────────────────────────────────────────────────────────────────────

func TestResetStock_FijaContadoresYEmiteRESET(t *testing.T) {
	product := productWithStock(10, 6) // stock 4
	uc, runner := newLedgerUC(product)

	received := int64(12)
	result, err := uc.ResetStock(context.Background(), "p1", 2, &received, "recomptage physique", "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(12), result.Product.QuantityReceived)
	assert.Equal(t, int64(2), result.Product.QuantitySold)
	assert.Equal(t, int64(10), result.Product.CurrentStock())

	require.Len(t, runner.movRepo.movements, 1)
	mov := runner.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeRESET, mov.Type)
	assert.Equal(t, int64(4), mov.PreviousQty)
	assert.Equal(t, int64(10), mov.NewQty)
	assert.Equal(t, int64(6), mov.Quantity, "delta del RESET = nuevo stock - stock previo")
}

func TestResetStock_SoloVendido_MantieneRecibido(t *testing.T) {
	product := productWithStock(10, 6)
	uc, _ := newLedgerUC(product)

	result, err := uc.ResetStock(context.Background(), "p1", 3, nil, "correction", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Product.QuantityReceived)
	assert.Equal(t, int64(3), result.Product.QuantitySold)
}

func TestResetStock_SinMotivo_Rechazado(t *testing.T) {
	uc, runner := newLedgerUC(productWithStock(10, 6))
	_, err := uc.ResetStock(context.Background(), "p1", 3, nil, "", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.movRepo.movements)
}

func TestResetStock_VendidoMayorQueRecibido_Rechazado(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(10, 6))
	_, err := uc.ResetStock(context.Background(), "p1", 11, nil, "recomptage", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResetStock_ContadoresNegativos_Rechazados(t *testing.T) {
	uc, _ := newLedgerUC(productWithStock(10, 6))
	_, err := uc.ResetStock(context.Background(), "p1", -1, nil, "recomptage", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := int64(-5)
	_, err = uc.ResetStock(context.Background(), "p1", 0, &negative, "recomptage", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
