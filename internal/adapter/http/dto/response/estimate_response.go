package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/domain/pricing"
)

type EstimateLineResponse struct {
	ID        string  `json:"id"`
	LineType  string  `json:"line_type"`
	RefID     string  `json:"ref_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
	Subtotal  float64 `json:"subtotal"`
}

// EstimateResponse carries the stored aggregate plus the totals computed for
// this read. Totals are never persisted; clients always see a fresh run of
// the pricing pipeline.
type EstimateResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Currency  string `json:"currency"`

	CoefficientComplexity float64 `json:"coefficient_complexity"`
	CoefficientUrgency    float64 `json:"coefficient_urgency"`
	CoefficientFloor      float64 `json:"coefficient_floor"`
	DiscountPercent       float64 `json:"discount_percent"`
	MarkupPercent         float64 `json:"markup_percent"`

	CreatedAt time.Time              `json:"created_at"`
	Lines     []EstimateLineResponse `json:"lines"`
	Totals    pricing.Totals         `json:"totals"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	lines := make([]EstimateLineResponse, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, EstimateLineResponse{
			ID:        l.ID,
			LineType:  string(l.LineType),
			RefID:     l.RefID,
			Name:      l.Name,
			Unit:      l.Unit,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Currency:  l.Currency,
			Subtotal:  l.Subtotal,
		})
	}

	return EstimateResponse{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Currency:  e.Currency,

		CoefficientComplexity: e.CoefficientComplexity,
		CoefficientUrgency:    e.CoefficientUrgency,
		CoefficientFloor:      e.CoefficientFloor,
		DiscountPercent:       e.DiscountPercent,
		MarkupPercent:         e.MarkupPercent,

		CreatedAt: e.CreatedAt,
		Lines:     lines,
		Totals:    pricing.ComputeEstimateTotals(e),
	}
}

func FromEstimateList(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
