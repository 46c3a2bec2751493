// Package importer implementa el alta masiva de productos desde una hoja de
// cálculo, asociada a un arrivage. Cada fila se valida y persiste de forma
// independiente: una fila mala no revierte las ya creadas (éxito parcial).
package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	domledger "github.com/revendix/revendix-api/internal/domain/ledger"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// Columnas esperadas (fila 1 = cabecera, se ignora):
// A nombre | B precio compra (origen) | C precio venta | D cantidad | E punto reorden | F precio promo
const (
	colName = iota
	colPurchasePrice
	colSellingPrice
	colQuantity
	colReorderLevel
	colPromoPrice
	minColumns = colQuantity + 1
)

// RowReader abstrae la lectura del archivo tabular (excelize en infraestructura).
type RowReader interface {
	ReadRows(r io.Reader) ([][]string, error)
}

// ImportUseCase alta masiva de productos de un arrivage.
type ImportUseCase struct {
	reader       RowReader
	productRepo  repository.ProductRepository
	shipmentRepo repository.ShipmentRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(reader RowReader, productRepo repository.ProductRepository, shipmentRepo repository.ShipmentRepository) *ImportUseCase {
	return &ImportUseCase{reader: reader, productRepo: productRepo, shipmentRepo: shipmentRepo}
}

// resultado interno de la validación de una fila.
type rowOutcome struct {
	product *entity.Product // nil si la fila no produce registro
	skipped string          // motivo de skip (fila vacía, sin cantidad…)
	errored string          // motivo de error (dato malformado)
}

// Run procesa el archivo: valida fila a fila y crea los productos válidos.
// Nunca aborta el lote: devuelve el reporte con imported/skipped/failed.
func (uc *ImportUseCase) Run(file io.Reader, shipmentID string) (*dto.ImportReport, error) {
	shipment, err := uc.shipmentRepo.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.reader.ReadRows(file)
	if err != nil {
		return nil, &domain.ValidationError{Field: "file", Reason: "archivo ilegible"}
	}
	if len(rows) <= 1 {
		return nil, &domain.ValidationError{Field: "file", Reason: "sin filas de datos"}
	}

	report := &dto.ImportReport{Rows: make([]dto.ImportRowResult, 0, len(rows)-1)}
	for i, cells := range rows[1:] { // fila 0 = cabecera
		rowNum := i + 1
		outcome := validateRow(cells, shipment)
		switch {
		case outcome.skipped != "":
			report.Skipped++
			report.Rows = append(report.Rows, dto.ImportRowResult{
				Row: rowNum, Status: dto.ImportRowSkipped, Reason: outcome.skipped,
			})
		case outcome.errored != "":
			report.Failed++
			report.Rows = append(report.Rows, dto.ImportRowResult{
				Row: rowNum, Status: dto.ImportRowFailed, Name: cellAt(cells, colName), Reason: outcome.errored,
			})
		default:
			// Commit independiente por fila: el repo sobre el pool autocommitea.
			if err := uc.productRepo.Create(outcome.product); err != nil {
				report.Failed++
				report.Rows = append(report.Rows, dto.ImportRowResult{
					Row: rowNum, Status: dto.ImportRowFailed, Name: outcome.product.Name, Reason: err.Error(),
				})
				continue
			}
			report.Imported++
			report.Rows = append(report.Rows, dto.ImportRowResult{
				Row: rowNum, Status: dto.ImportRowImported, Name: outcome.product.Name, ProductID: outcome.product.ID,
			})
		}
	}
	return report, nil
}

// validateRow mapea una fila cruda a un producto validado, o a un skip/error etiquetado.
func validateRow(cells []string, shipment *entity.Shipment) rowOutcome {
	if isBlankRow(cells) {
		return rowOutcome{skipped: "ligne vide"}
	}
	if len(cells) < minColumns {
		return rowOutcome{skipped: "colonnes manquantes"}
	}
	name := strings.TrimSpace(cellAt(cells, colName))
	if name == "" {
		return rowOutcome{skipped: "nom manquant"}
	}

	purchasePrice, err := parseDecimal(cellAt(cells, colPurchasePrice))
	if err != nil || purchasePrice.LessThan(decimal.Zero) {
		return rowOutcome{errored: "prix d'achat invalide"}
	}
	sellingPrice, err := parseDecimal(cellAt(cells, colSellingPrice))
	if err != nil || sellingPrice.LessThan(decimal.Zero) {
		return rowOutcome{errored: "prix de vente invalide"}
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(cellAt(cells, colQuantity)), 10, 64)
	if err != nil || quantity < 0 {
		return rowOutcome{errored: "quantité invalide"}
	}
	if quantity == 0 {
		return rowOutcome{skipped: "quantité nulle"}
	}

	var reorderLevel int64
	if raw := strings.TrimSpace(cellAt(cells, colReorderLevel)); raw != "" {
		reorderLevel, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || reorderLevel < 0 {
			return rowOutcome{errored: "seuil de réapprovisionnement invalide"}
		}
	}
	var promoPrice *decimal.Decimal
	if raw := strings.TrimSpace(cellAt(cells, colPromoPrice)); raw != "" {
		p, err := parseDecimal(raw)
		if err != nil || p.LessThan(decimal.Zero) {
			return rowOutcome{errored: "prix promo invalide"}
		}
		promoPrice = &p
	}

	now := time.Now()
	return rowOutcome{product: &entity.Product{
		ID:                uuid.New().String(),
		Name:              name,
		SupplierID:        shipment.SupplierID,
		ShipmentID:        shipment.ID,
		PurchasePrice:     purchasePrice,
		PurchaseCostLocal: domledger.UnitCostLocal(purchasePrice, shipment.ExchangeRate, decimal.Zero, 0),
		SellingPrice:      sellingPrice,
		PromoPrice:        promoPrice,
		QuantityReceived:  quantity,
		ReorderLevel:      reorderLevel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}}
}

func cellAt(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDecimal acepta coma o punto como separador decimal (hojas en francés).
func parseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(s)
}
