package importer_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/application/importer"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRowReader devuelve filas predefinidas sin leer un .xlsx real.
type fakeRowReader struct {
	rows [][]string
	err  error
}

func (f *fakeRowReader) ReadRows(io.Reader) ([][]string, error) { return f.rows, f.err }

type fakeProductRepo struct {
	created   []*entity.Product
	failNames map[string]bool // nombres cuyo Create falla (simula error de BD)
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if f.failNames[p.Name] {
		return errors.New("contrainte violée")
	}
	f.created = append(f.created, p)
	return nil
}
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) UpdateCounters(string, int64, int64) error    { return nil }
func (f *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(string) error { return nil }

type fakeShipmentRepo struct {
	shipment *entity.Shipment
}

func (f *fakeShipmentRepo) Create(*entity.Shipment) error { return nil }
func (f *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	if f.shipment != nil && f.shipment.ID == id {
		return f.shipment, nil
	}
	return nil, nil
}
func (f *fakeShipmentRepo) Update(*entity.Shipment) error            { return nil }
func (f *fakeShipmentRepo) List(int, int) ([]*entity.Shipment, error) { return nil, nil }
func (f *fakeShipmentRepo) Delete(string) error                       { return nil }

func testShipment() *entity.Shipment {
	return &entity.Shipment{
		ID:           "arr1",
		Reference:    "ARR-2026-08",
		SupplierID:   "sup1",
		ExchangeRate: decimal.NewFromInt(600),
		ArrivalDate:  time.Now(),
	}
}

const header = "Nom;Prix achat;Prix vente;Quantité;Seuil;Prix promo"

func rowsOf(lines ...string) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.Split(l, ";"))
	}
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// Run
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_FilasValidasCreanProductos(t *testing.T) {
	productRepo := &fakeProductRepo{}
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(
			header,
			"Coque iPhone;3,50;5000;20;5;4500",
			"Chargeur USB-C;2;3000;15;3;",
		)},
		productRepo,
		&fakeShipmentRepo{shipment: testShipment()},
	)

	report, err := uc.Run(strings.NewReader(""), "arr1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, productRepo.created, 2)

	first := productRepo.created[0]
	assert.Equal(t, "Coque iPhone", first.Name)
	assert.Equal(t, int64(20), first.QuantityReceived)
	assert.Equal(t, "arr1", first.ShipmentID)
	assert.Equal(t, "sup1", first.SupplierID, "hereda el proveedor del arrivage")
	assert.True(t, first.PurchasePrice.Equal(decimal.RequireFromString("3.5")), "acepta coma decimal")
	assert.True(t, first.PurchaseCostLocal.Equal(decimal.RequireFromString("2100")), "costo local = precio × tasa del arrivage")
	require.NotNil(t, first.PromoPrice)
	assert.True(t, first.PromoPrice.Equal(decimal.NewFromInt(4500)))
}

func TestImport_ExitoParcial(t *testing.T) {
	// Una fila mala no revierte las anteriores; cada fila se reporta con su estado.
	productRepo := &fakeProductRepo{}
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(
			header,
			"Produit OK;2;3000;10;;",
			";;;;;",                      // vacía => skipped
			"Sans quantité;2;3000;abc;;", // cantidad ilegible => failed
			"Quantité nulle;2;3000;0;;",  // cantidad 0 => skipped
			"Autre OK;1;2000;5;;",
		)},
		productRepo,
		&fakeShipmentRepo{shipment: testShipment()},
	)

	report, err := uc.Run(strings.NewReader(""), "arr1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Rows, 5, "cada fila de datos tiene su resultado")

	assert.Equal(t, dto.ImportRowSkipped, report.Rows[1].Status)
	assert.Equal(t, "ligne vide", report.Rows[1].Reason)
	assert.Equal(t, dto.ImportRowFailed, report.Rows[2].Status)
	assert.Equal(t, "quantité invalide", report.Rows[2].Reason)
	assert.Equal(t, dto.ImportRowSkipped, report.Rows[3].Status)
	assert.Equal(t, "quantité nulle", report.Rows[3].Reason)
}

func TestImport_ErrorDePersistenciaNoAbortaElLote(t *testing.T) {
	productRepo := &fakeProductRepo{failNames: map[string]bool{"Doublon": true}}
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(
			header,
			"Doublon;2;3000;10;;",
			"Produit OK;2;3000;5;;",
		)},
		productRepo,
		&fakeShipmentRepo{shipment: testShipment()},
	)

	report, err := uc.Run(strings.NewReader(""), "arr1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, productRepo.created, 1)
	assert.Equal(t, "Produit OK", productRepo.created[0].Name)
}

func TestImport_PreciosInvalidos(t *testing.T) {
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(
			header,
			"Prix négatif;-2;3000;10;;",
			"Prix vente illisible;2;abc;10;;",
			"Promo illisible;2;3000;10;;xyz",
		)},
		&fakeProductRepo{},
		&fakeShipmentRepo{shipment: testShipment()},
	)

	report, err := uc.Run(strings.NewReader(""), "arr1")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 3, report.Failed)
	assert.Equal(t, "prix d'achat invalide", report.Rows[0].Reason)
	assert.Equal(t, "prix de vente invalide", report.Rows[1].Reason)
	assert.Equal(t, "prix promo invalide", report.Rows[2].Reason)
}

func TestImport_ArrivageInexistente(t *testing.T) {
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(header, "Produit;2;3000;10;;")},
		&fakeProductRepo{},
		&fakeShipmentRepo{}, // sin arrivage
	)
	_, err := uc.Run(strings.NewReader(""), "arr1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImport_ArchivoSinFilasDeDatos(t *testing.T) {
	uc := importer.NewImportUseCase(
		&fakeRowReader{rows: rowsOf(header)},
		&fakeProductRepo{},
		&fakeShipmentRepo{shipment: testShipment()},
	)
	_, err := uc.Run(strings.NewReader(""), "arr1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImport_ArchivoIlegible(t *testing.T) {
	uc := importer.NewImportUseCase(
		&fakeRowReader{err: errors.New("zip: not a valid zip file")},
		&fakeProductRepo{},
		&fakeShipmentRepo{shipment: testShipment()},
	)
	_, err := uc.Run(strings.NewReader(""), "arr1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
