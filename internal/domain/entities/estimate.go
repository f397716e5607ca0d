package entities

import "time"

// LineType tells which catalog an estimate line was priced from.
type LineType string

const (
	LineTypeWork     LineType = "work"
	LineTypeMaterial LineType = "material"
)

// Valid reports whether the line type is one of the two supported catalogs.
func (t LineType) Valid() bool {
	return t == LineTypeWork || t == LineTypeMaterial
}

// EstimateLine is one priced catalog occurrence inside an estimate.
//
// Lines are resolved once, at estimate creation time, and never edited
// afterwards. Subtotal is always derived (quantity x unit price, rounded to
// 2 decimals) and never accepted from callers.
type EstimateLine struct {
	ID        string   `json:"id"`
	LineType  LineType `json:"line_type"`
	RefID     string   `json:"ref_id"`
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	Quantity  float64  `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Currency  string   `json:"currency"`
	Subtotal  float64  `json:"subtotal"`
}

// Estimate is the pricing aggregate: an envelope of coefficients and
// percentages over an ordered collection of resolved lines.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): PK project_id, SK created_at
//   - lines are embedded in the estimate item, so the aggregate and its lines
//     are written and deleted as one unit.
//
// Coefficients are persisted as 1.0 when the caller leaves them unset; the
// percentages default to 0. Line order is insertion order.
type Estimate struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Currency  string `json:"currency"`

	CoefficientComplexity float64 `json:"coefficient_complexity"`
	CoefficientUrgency    float64 `json:"coefficient_urgency"`
	CoefficientFloor      float64 `json:"coefficient_floor"`
	DiscountPercent       float64 `json:"discount_percent"`
	MarkupPercent         float64 `json:"markup_percent"`

	CreatedAt time.Time      `json:"created_at"`
	Lines     []EstimateLine `json:"lines"`
}
