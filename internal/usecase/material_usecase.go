package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMaterialNotFound    = errors.New("material not found")
	ErrInvalidMaterialID   = errors.New("invalid material id")
	ErrInvalidMaterialName = errors.New("invalid material name")
	ErrMaterialNameTaken   = errors.New("material name already taken")
)

// MaterialInput carries the caller-editable material catalog fields.
type MaterialInput struct {
	Name         string
	Unit         string
	PricePerUnit float64
	Currency     string
	Supplier     string
	IsActive     bool
}

// IMaterialUseCase exposes materials-catalog management.

type IMaterialUseCase interface {
	Create(ctx context.Context, in MaterialInput) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) Create(ctx context.Context, in MaterialInput) (entities.Material, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}

	// Enforce: unique name per catalog.
	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Material{}, err
	} else if existing.ID != "" {
		return entities.Material{}, ErrMaterialNameTaken
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()
	m := entities.Material{
		ID:           uuid.NewString(),
		Name:         name,
		Unit:         strings.TrimSpace(in.Unit),
		PricePerUnit: in.PricePerUnit,
		Currency:     currency,
		Supplier:     strings.TrimSpace(in.Supplier),
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, m)
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

// List returns the whole catalog sorted by name.
func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}
	if name != existing.Name {
		if other, err := u.repo.GetByName(ctx, name); err != nil {
			return entities.Material{}, err
		} else if other.ID != "" && other.ID != existing.ID {
			return entities.Material{}, ErrMaterialNameTaken
		}
	}

	existing.Name = name
	existing.Unit = strings.TrimSpace(in.Unit)
	existing.PricePerUnit = in.PricePerUnit
	if currency := strings.TrimSpace(in.Currency); currency != "" {
		existing.Currency = currency
	}
	existing.Supplier = strings.TrimSpace(in.Supplier)
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
