package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/domain/pricing"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateTitle = errors.New("invalid estimate title")
	ErrInvalidLineType      = errors.New("invalid line type")
)

// CatalogEntryNotFoundError reports which catalog lookup failed during line
// resolution, carrying the kind and the reference id.
type CatalogEntryNotFoundError struct {
	Kind  entities.LineType
	RefID string
}

func (e *CatalogEntryNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.RefID)
}

// EstimateLineInput is one line request inside a create-estimate call.
//
// UnitPrice is a pointer so an explicit 0.0 override is distinguishable from
// "use the catalog price". Name, unit, and currency fall back to the catalog
// entry when empty.
type EstimateLineInput struct {
	LineType  string
	RefID     string
	Quantity  float64
	Name      string
	Unit      string
	UnitPrice *float64
	Currency  string
}

// CreateEstimateInput is the envelope plus line requests for estimate
// creation. Zero-valued coefficients mean "unset" and are persisted as the
// neutral 1.0.
type CreateEstimateInput struct {
	ProjectID string
	Title     string
	Currency  string

	CoefficientComplexity float64
	CoefficientUrgency    float64
	CoefficientFloor      float64
	DiscountPercent       float64
	MarkupPercent         float64

	Lines []EstimateLineInput
}

// IEstimateUseCase exposes the pricing-engine operations over estimates.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	Totals(ctx context.Context, id string) (pricing.Totals, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	projectRepo  interfaces.IProjectRepository
	workRepo     interfaces.IWorkRepository
	materialRepo interfaces.IMaterialRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	projectRepo interfaces.IProjectRepository,
	workRepo interfaces.IWorkRepository,
	materialRepo interfaces.IMaterialRepository,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:         repo,
		projectRepo:  projectRepo,
		workRepo:     workRepo,
		materialRepo: materialRepo,
	}
}

// Create builds and persists the estimate aggregate in one atomic operation.
//
// All lines are resolved in memory first; the first lookup failure aborts the
// whole call before anything is written. Only after every line resolved does
// the aggregate go to the repository as a single put, which is what makes the
// creation all-or-nothing.
func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Estimate{}, ErrInvalidEstimateTitle
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if project.ID == "" {
		return entities.Estimate{}, ErrProjectNotFound
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = project.Currency
	}

	lines := make([]entities.EstimateLine, 0, len(in.Lines))
	for _, li := range in.Lines {
		line, err := u.resolveLine(ctx, li)
		if err != nil {
			return entities.Estimate{}, err
		}
		lines = append(lines, line)
	}

	e := entities.Estimate{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Title:     title,
		Currency:  currency,

		CoefficientComplexity: orNeutralCoefficient(in.CoefficientComplexity),
		CoefficientUrgency:    orNeutralCoefficient(in.CoefficientUrgency),
		CoefficientFloor:      orNeutralCoefficient(in.CoefficientFloor),
		DiscountPercent:       in.DiscountPercent,
		MarkupPercent:         in.MarkupPercent,

		CreatedAt: time.Now().UTC(),
		Lines:     lines,
	}
	return u.repo.Create(ctx, e)
}

// resolveLine turns one line request into a fully-populated line record with
// exactly one catalog read. An explicitly provided unit price (pointer set,
// even to zero) wins over the catalog price.
func (u *EstimateUseCase) resolveLine(ctx context.Context, in EstimateLineInput) (entities.EstimateLine, error) {
	lineType := entities.LineType(strings.TrimSpace(in.LineType))

	var catalogName, catalogUnit, catalogCurrency string
	var catalogPrice float64

	switch lineType {
	case entities.LineTypeWork:
		w, err := u.workRepo.GetByID(ctx, in.RefID)
		if err != nil {
			return entities.EstimateLine{}, err
		}
		if w.ID == "" {
			return entities.EstimateLine{}, &CatalogEntryNotFoundError{Kind: lineType, RefID: in.RefID}
		}
		catalogName, catalogUnit, catalogCurrency, catalogPrice = w.Name, w.Unit, w.Currency, w.BaseRate
	case entities.LineTypeMaterial:
		m, err := u.materialRepo.GetByID(ctx, in.RefID)
		if err != nil {
			return entities.EstimateLine{}, err
		}
		if m.ID == "" {
			return entities.EstimateLine{}, &CatalogEntryNotFoundError{Kind: lineType, RefID: in.RefID}
		}
		catalogName, catalogUnit, catalogCurrency, catalogPrice = m.Name, m.Unit, m.Currency, m.PricePerUnit
	default:
		return entities.EstimateLine{}, fmt.Errorf("%w: %q", ErrInvalidLineType, in.LineType)
	}

	unitPrice := catalogPrice
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = catalogName
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = catalogUnit
	}
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = catalogCurrency
	}

	return entities.EstimateLine{
		ID:        uuid.NewString(),
		LineType:  lineType,
		RefID:     in.RefID,
		Name:      name,
		Unit:      unit,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		Currency:  currency,
		Subtotal:  pricing.LineSubtotal(in.Quantity, unitPrice),
	}, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Totals loads an estimate and runs the pricing pipeline over it.
func (u *EstimateUseCase) Totals(ctx context.Context, id string) (pricing.Totals, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.ComputeEstimateTotals(e), nil
}

func orNeutralCoefficient(c float64) float64 {
	if c == 0 {
		return 1
	}
	return c
}
