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
	ErrWorkNotFound    = errors.New("work not found")
	ErrInvalidWorkID   = errors.New("invalid work id")
	ErrInvalidWorkName = errors.New("invalid work name")
	ErrWorkNameTaken   = errors.New("work name already taken")
)

// WorkInput carries the caller-editable work catalog fields.
type WorkInput struct {
	Name        string
	Description string
	Unit        string
	BaseRate    float64
	Currency    string
	IsActive    bool
}

// IWorkUseCase exposes works-catalog management. Names are unique across the
// catalog; the pricing engine only ever reads these entries.

type IWorkUseCase interface {
	Create(ctx context.Context, in WorkInput) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
	List(ctx context.Context) ([]entities.Work, error)
	Update(ctx context.Context, id string, in WorkInput) (entities.Work, error)
	Delete(ctx context.Context, id string) error
}

type WorkUseCase struct {
	repo interfaces.IWorkRepository
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

func (u *WorkUseCase) Create(ctx context.Context, in WorkInput) (entities.Work, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Work{}, ErrInvalidWorkName
	}

	// Enforce: unique name per catalog.
	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Work{}, err
	} else if existing.ID != "" {
		return entities.Work{}, ErrWorkNameTaken
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()
	w := entities.Work{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
		BaseRate:    in.BaseRate,
		Currency:    currency,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, w)
}

func (u *WorkUseCase) GetByID(ctx context.Context, id string) (entities.Work, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Work{}, ErrInvalidWorkID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}
	if w.ID == "" {
		return entities.Work{}, ErrWorkNotFound
	}
	return w, nil
}

// List returns the whole catalog sorted by name.
func (u *WorkUseCase) List(ctx context.Context) ([]entities.Work, error) {
	return u.repo.List(ctx)
}

func (u *WorkUseCase) Update(ctx context.Context, id string, in WorkInput) (entities.Work, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Work{}, ErrInvalidWorkName
	}
	if name != existing.Name {
		if other, err := u.repo.GetByName(ctx, name); err != nil {
			return entities.Work{}, err
		} else if other.ID != "" && other.ID != existing.ID {
			return entities.Work{}, ErrWorkNameTaken
		}
	}

	existing.Name = name
	existing.Description = strings.TrimSpace(in.Description)
	existing.Unit = strings.TrimSpace(in.Unit)
	existing.BaseRate = in.BaseRate
	if currency := strings.TrimSpace(in.Currency); currency != "" {
		existing.Currency = currency
	}
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *WorkUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
