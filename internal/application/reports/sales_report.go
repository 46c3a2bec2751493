// Package reports arma los datos de exportación (Excel) a partir de ventas y productos.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/revendix/revendix-api/internal/domain/ledger"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

// SalesReportRow una línea del export de ventas.
type SalesReportRow struct {
	SaleDate    time.Time
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Margin      decimal.Decimal // (precio - costo local) × cantidad
	IsPromo     bool
	Notes       string
}

// SalesReportWriter serializa las filas (excelize en infraestructura).
type SalesReportWriter interface {
	Write(rows []SalesReportRow) ([]byte, error)
}

// SalesReportUseCase genera el export de ventas de un período.
type SalesReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	writer      SalesReportWriter
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, writer SalesReportWriter) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo, productRepo: productRepo, writer: writer}
}

// maxExportRows techo defensivo del export (una página de dashboard, no un ETL).
const maxExportRows = 10000

// Export genera el .xlsx con las ventas del período.
func (uc *SalesReportUseCase) Export(from, to *time.Time) ([]byte, error) {
	sales, err := uc.saleRepo.List(from, to, "", maxExportRows, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]SalesReportRow, 0, len(sales))
	// cache local para no releer el mismo producto por cada venta
	names := map[string]string{}
	costs := map[string]decimal.Decimal{}
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			p, err := uc.productRepo.GetByID(s.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				names[s.ProductID] = p.Name
				costs[s.ProductID] = p.PurchaseCostLocal
			} else {
				names[s.ProductID] = "(produit supprimé)"
				costs[s.ProductID] = decimal.Zero
			}
			name = names[s.ProductID]
		}
		margin := ledger.Margin(s.UnitPrice, costs[s.ProductID]).Mul(decimal.NewFromInt(s.Quantity))
		rows = append(rows, SalesReportRow{
			SaleDate:    s.SaleDate,
			ProductName: name,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			TotalAmount: s.TotalAmount,
			Margin:      margin,
			IsPromo:     s.IsPromo,
			Notes:       s.Notes,
		})
	}
	return uc.writer.Write(rows)
}
