package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type WorkResponse struct {
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

func FromWork(w entities.Work) WorkResponse {
	return WorkResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Unit:        w.Unit,
		BaseRate:    w.BaseRate,
		Currency:    w.Currency,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func FromWorkList(works []entities.Work) []WorkResponse {
	out := make([]WorkResponse, 0, len(works))
	for _, w := range works {
		out = append(out, FromWork(w))
	}
	return out
}

type MaterialResponse struct {
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

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		PricePerUnit: m.PricePerUnit,
		Currency:     m.Currency,
		Supplier:     m.Supplier,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromMaterialList(materials []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}
