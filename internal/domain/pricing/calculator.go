// Package pricing implements the estimate pricing rules: money rounding,
// line subtotals, and the staged totals pipeline (items subtotal ->
// coefficients -> discount/markup).
package pricing

import "math"

// RoundMoney rounds a monetary amount to 2 decimal places using
// round-half-to-even. Every monetary result in the system passes through
// this function before being stored or returned; the staged rounding is part
// of the numeric contract, not a float nicety.
func RoundMoney(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

// LineSubtotal computes quantity x unit price, rounded to 2 decimals.
func LineSubtotal(quantity, unitPrice float64) float64 {
	return RoundMoney(quantity * unitPrice)
}

// ApplyCoefficients scales an amount by the three estimate coefficients and
// rounds the result. Unset coefficients (zero) count as neutral 1.0.
func ApplyCoefficients(amount, complexity, urgency, floor float64) float64 {
	return RoundMoney(amount * orNeutral(complexity) * orNeutral(urgency) * orNeutral(floor))
}

// ApplyDiscountAndMarkup applies the discount first and then the markup on
// the discounted amount, rounding once at the end. The order is load-bearing:
// markup is computed on the post-discount value.
func ApplyDiscountAndMarkup(amount, discountPercent, markupPercent float64) float64 {
	discounted := amount * (1 - discountPercent/100)
	return RoundMoney(discounted * (1 + markupPercent/100))
}

// LineAmount carries the two inputs the totals pipeline needs per line.
type LineAmount struct {
	Quantity  float64
	UnitPrice float64
}

// Totals is the output of the pricing pipeline.
type Totals struct {
	ItemsSubtotal     float64 `json:"items_subtotal"`
	AfterCoefficients float64 `json:"after_coefficients"`
	Total             float64 `json:"total"`
}

// ComputeTotals folds the lines and the estimate envelope into the final
// numbers. Pure function: same inputs, same output, no side effects.
func ComputeTotals(lines []LineAmount, complexity, urgency, floor, discountPercent, markupPercent float64) Totals {
	var sum float64
	for _, l := range lines {
		sum += LineSubtotal(l.Quantity, l.UnitPrice)
	}
	itemsSubtotal := RoundMoney(sum)
	afterCoefficients := ApplyCoefficients(itemsSubtotal, complexity, urgency, floor)
	total := ApplyDiscountAndMarkup(afterCoefficients, discountPercent, markupPercent)
	return Totals{
		ItemsSubtotal:     itemsSubtotal,
		AfterCoefficients: afterCoefficients,
		Total:             total,
	}
}

// orNeutral treats an unset (zero) coefficient as the neutral 1.0.
func orNeutral(c float64) float64 {
	if c == 0 {
		return 1
	}
	return c
}
