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
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
)

const defaultCurrency = "EUR"

// ProjectInput carries the caller-editable project fields.
type ProjectInput struct {
	Name       string
	ClientName string
	Address    string
	Currency   string
}

// IProjectUseCase exposes project CRUD.

type IProjectUseCase interface {
	Create(ctx context.Context, in ProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (entities.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	p := entities.Project{
		ID:         uuid.NewString(),
		Name:       name,
		ClientName: strings.TrimSpace(in.ClientName),
		Address:    strings.TrimSpace(in.Address),
		Currency:   currency,
		CreatedAt:  time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// List returns all projects newest-created-first.
func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	existing.Name = name
	existing.ClientName = strings.TrimSpace(in.ClientName)
	existing.Address = strings.TrimSpace(in.Address)
	if currency := strings.TrimSpace(in.Currency); currency != "" {
		existing.Currency = currency
	}
	return u.repo.Update(ctx, existing)
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
