package request

import (
	"construtora_xpto/internal/usecase"
)

// EstimateLineRequest is one line of a create-estimate payload.
//
// UnitPrice is a pointer on purpose: sending "unit_price": 0 is an explicit
// free-of-charge override, while omitting the field means "price from the
// catalog".
type EstimateLineRequest struct {
	LineType  string   `json:"line_type" binding:"required"`
	RefID     string   `json:"ref_id" binding:"required"`
	Quantity  float64  `json:"quantity"`
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	UnitPrice *float64 `json:"unit_price"`
	Currency  string   `json:"currency"`
}

type CreateEstimateRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Currency  string `json:"currency"`

	CoefficientComplexity float64 `json:"coefficient_complexity"`
	CoefficientUrgency    float64 `json:"coefficient_urgency"`
	CoefficientFloor      float64 `json:"coefficient_floor"`
	DiscountPercent       float64 `json:"discount_percent"`
	MarkupPercent         float64 `json:"markup_percent"`

	Lines []EstimateLineRequest `json:"lines"`
}

// ToInput maps the payload onto the use case command.
func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	lines := make([]usecase.EstimateLineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, usecase.EstimateLineInput{
			LineType:  l.LineType,
			RefID:     l.RefID,
			Quantity:  l.Quantity,
			Name:      l.Name,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
			Currency:  l.Currency,
		})
	}

	return usecase.CreateEstimateInput{
		ProjectID:             r.ProjectID,
		Title:                 r.Title,
		Currency:              r.Currency,
		CoefficientComplexity: r.CoefficientComplexity,
		CoefficientUrgency:    r.CoefficientUrgency,
		CoefficientFloor:      r.CoefficientFloor,
		DiscountPercent:       r.DiscountPercent,
		MarkupPercent:         r.MarkupPercent,
		Lines:                 lines,
	}
}
