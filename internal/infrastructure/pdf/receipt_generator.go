// Package pdf implementa la generación del recibo de venta en PDF con Maroto v2.
//
// Layout A5:
//
//	┌──────────────────────────────────────────┐
//	│  REVENDIX · Reçu de vente / Sales receipt │
//	│  ──────────────────────────────────────  │
//	│  N° vente + date                          │
//	│  TABLA: Produit | Qté | P.U. | Total      │
//	│  TOTAL À PAYER                            │
//	│  Notes (si las hay)                       │
//	└──────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/revendix/revendix-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	if businessName == "" {
		businessName = "Revendix"
	}
	return &MarotoReceiptGenerator{businessName: businessName}
}

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, sale *entity.Sale, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reçu de vente", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New(g.businessName, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			})),
			col.New(4).Add(text.New("Reçu de vente / Sales receipt", props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			})),
		),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
		row.New(8).Add(
			col.New(6).Add(text.New(fmt.Sprintf("N° %s", shortID(sale.ID)), props.Text{Size: 9})),
			col.New(6).Add(text.New(sale.SaleDate.Format("02/01/2006"), props.Text{Size: 9, Align: align.Right})),
		),
	)

	m.AddRows(headerTableRow())
	m.AddRows(itemRow(sale, product))
	m.AddRows(
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(10).Add(
			col.New(8).Add(text.New("TOTAL À PAYER / TOTAL DUE", props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right,
			})),
			col.New(4).Add(text.New(sale.TotalAmount.StringFixed(2), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			})),
		),
	)

	if sale.Notes != "" {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Notes: "+sale.Notes, props.Text{Size: 8, Color: colorGray})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerTableRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Produit / Product", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Qté", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("P.U.", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func itemRow(sale *entity.Sale, product *entity.Product) core.Row {
	name := product.Name
	if sale.IsPromo {
		name += " (promo)"
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 9})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(sale.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(sale.TotalAmount.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

// shortID recorta el UUID para el número de recibo visible.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
