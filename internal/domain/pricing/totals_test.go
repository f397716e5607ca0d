package pricing

import (
	"testing"

	"construtora_xpto/internal/domain/entities"
)

func TestComputeEstimateTotals(t *testing.T) {
	e := entities.Estimate{
		CoefficientComplexity: 1.2,
		CoefficientUrgency:    1.1,
		CoefficientFloor:      1.0,
		DiscountPercent:       10,
		MarkupPercent:         5,
		Lines: []entities.EstimateLine{
			{Quantity: 3, UnitPrice: 100, Subtotal: 300},
		},
	}

	totals := ComputeEstimateTotals(e)
	if totals.ItemsSubtotal != 300 || totals.AfterCoefficients != 396 || totals.Total != 374.22 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

// Totals derive from quantity and unit price, never from the stored subtotal.
func TestComputeEstimateTotals_IgnoresStoredSubtotal(t *testing.T) {
	e := entities.Estimate{
		Lines: []entities.EstimateLine{
			{Quantity: 2, UnitPrice: 10, Subtotal: 999},
		},
	}
	totals := ComputeEstimateTotals(e)
	if totals.ItemsSubtotal != 20 {
		t.Fatalf("items subtotal = %v, want 20", totals.ItemsSubtotal)
	}
}
