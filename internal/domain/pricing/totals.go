package pricing

import "construtora_xpto/internal/domain/entities"

// ComputeEstimateTotals runs the totals pipeline over an estimate aggregate.
// Lines recompute from quantity and unit price, not from the stored subtotal.
func ComputeEstimateTotals(e entities.Estimate) Totals {
	amounts := make([]LineAmount, 0, len(e.Lines))
	for _, l := range e.Lines {
		amounts = append(amounts, LineAmount{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return ComputeTotals(
		amounts,
		e.CoefficientComplexity,
		e.CoefficientUrgency,
		e.CoefficientFloor,
		e.DiscountPercent,
		e.MarkupPercent,
	)
}
