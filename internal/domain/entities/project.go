package entities

import "time"

// Project groups estimates for one construction site/client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The project supplies the default currency for estimates created without an
// explicit one. Estimates reference projects but are not owned by them.
type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}
