package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/revendix/revendix-api/internal/application/reports"
)

// SalesReportWriter genera el export .xlsx de ventas.
type SalesReportWriter struct{}

// NewSalesReportWriter construye el writer.
func NewSalesReportWriter() *SalesReportWriter { return &SalesReportWriter{} }

// cabecera del export (bilingüe, como la UI).
var salesHeader = []string{
	"Date", "Produit / Product", "Quantité / Qty", "Prix unitaire / Unit price",
	"Total", "Marge / Margin", "Promo", "Notes",
}

// Write vuelca las filas del reporte a un workbook en memoria.
func (w *SalesReportWriter) Write(rows []reports.SalesReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ventes"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, title := range salesHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("cabecera: %w", err)
		}
	}
	for i, row := range rows {
		promo := ""
		if row.IsPromo {
			promo = "oui"
		}
		values := []interface{}{
			row.SaleDate.Format("2006-01-02"),
			row.ProductName,
			row.Quantity,
			row.UnitPrice.InexactFloat64(),
			row.TotalAmount.InexactFloat64(),
			row.Margin.InexactFloat64(),
			promo,
			row.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("fila %d: %w", i+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
