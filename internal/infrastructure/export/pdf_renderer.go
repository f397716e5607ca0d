package export

import (
	"fmt"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/domain/pricing"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// EstimateRenderer renders estimates into downloadable documents.

type EstimateRenderer struct{}

var _ interfaces.IDocumentRenderer = (*EstimateRenderer)(nil)

func NewEstimateRenderer() *EstimateRenderer {
	return &EstimateRenderer{}
}

// RenderPDF builds the estimate document: title header, one line per
// estimate line, then the totals block.
func (r *EstimateRenderer) RenderPDF(e entities.Estimate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, e)
	for _, l := range e.Lines {
		addPDFLine(m, l)
	}
	addPDFTotals(m, e)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, e entities.Estimate) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Estimate: %s", e.Title), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Project: %s", e.ProjectID), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Currency: %s", e.Currency), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// Line format: name (unit): quantity x unit_price = subtotal currency.
func addPDFLine(m core.Maroto, l entities.EstimateLine) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("%s (%s): %s x %s = %s %s",
						l.Name, l.Unit,
						formatNumber(l.Quantity), formatMoney(l.UnitPrice),
						formatMoney(l.Subtotal), l.Currency,
					),
					props.Text{Size: 10, Align: align.Left},
				),
			),
		),
	)
}

func addPDFTotals(m core.Maroto, e entities.Estimate) {
	totals := pricing.ComputeEstimateTotals(e)

	m.AddRows(row.New(4))
	rows := []struct {
		label string
		value float64
	}{
		{"Items subtotal", totals.ItemsSubtotal},
		{"After coefficients", totals.AfterCoefficients},
		{"Total", totals.Total},
	}
	for _, tr := range rows {
		style := fontstyle.Normal
		if tr.label == "Total" {
			style = fontstyle.Bold
		}
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(
					text.New(tr.label, props.Text{Size: 10, Style: style, Align: align.Right}),
				),
				col.New(4).Add(
					text.New(fmt.Sprintf("%s %s", formatMoney(tr.value), e.Currency), props.Text{Size: 10, Style: style, Align: align.Right}),
				),
			),
		)
	}
}
