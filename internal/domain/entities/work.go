package entities

import "time"

// Work is a reusable unit of labor from the works catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name (backs the unique-name rule)
//
// Catalog entries are reference data: the pricing engine reads them to
// resolve estimate lines and never mutates them.
type Work struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Unit        string    `json:"unit"`
	BaseRate    float64   `json:"base_rate"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
