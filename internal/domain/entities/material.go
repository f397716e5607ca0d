package entities

import "time"

// Material is a physical item from the materials catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name (backs the unique-name rule)
type Material struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	PricePerUnit float64   `json:"price_per_unit"`
	Currency     string    `json:"currency"`
	Supplier     string    `json:"supplier,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
