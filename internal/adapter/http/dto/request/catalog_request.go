package request

import (
	"construtora_xpto/internal/usecase"
)

// WorkRequest creates or updates a works-catalog entry. IsActive is a pointer
// so an omitted field defaults to active instead of deactivating the entry.
type WorkRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	BaseRate    float64 `json:"base_rate"`
	Currency    string  `json:"currency"`
	IsActive    *bool   `json:"is_active"`
}

func (r WorkRequest) ToInput() usecase.WorkInput {
	return usecase.WorkInput{
		Name:        r.Name,
		Description: r.Description,
		Unit:        r.Unit,
		BaseRate:    r.BaseRate,
		Currency:    r.Currency,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}
}

type MaterialRequest struct {
	Name         string  `json:"name" binding:"required"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Currency     string  `json:"currency"`
	Supplier     string  `json:"supplier"`
	IsActive     *bool   `json:"is_active"`
}

func (r MaterialRequest) ToInput() usecase.MaterialInput {
	return usecase.MaterialInput{
		Name:         r.Name,
		Unit:         r.Unit,
		PricePerUnit: r.PricePerUnit,
		Currency:     r.Currency,
		Supplier:     r.Supplier,
		IsActive:     r.IsActive == nil || *r.IsActive,
	}
}
