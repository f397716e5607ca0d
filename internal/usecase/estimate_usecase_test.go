package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newEstimateMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIWorkRepository, *mock_interfaces.MockIMaterialRepository, *EstimateUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	works := mock_interfaces.NewMockIWorkRepository(ctrl)
	materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
	uc := NewEstimateUseCase(repo, projects, works, materials)
	return ctrl, repo, projects, works, materials, uc
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEstimateInput{ProjectID: "   ", Title: "Kitchen"})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEstimateInput{ProjectID: "p-1", Title: " "})
		if !errors.Is(err, ErrInvalidEstimateTitle) {
			t.Fatalf("expected ErrInvalidEstimateTitle, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl, _, projects, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.Project{}, nil)

		_, err := uc.Create(context.Background(), CreateEstimateInput{ProjectID: "p-missing", Title: "Kitchen"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("invalid line type aborts before any write", func(t *testing.T) {
		ctrl, _, projects, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "EUR"}, nil)

		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ProjectID: "p-1",
			Title:     "Kitchen",
			Lines:     []EstimateLineInput{{LineType: "equipment", RefID: "x", Quantity: 1}},
		})
		if !errors.Is(err, ErrInvalidLineType) {
			t.Fatalf("expected ErrInvalidLineType, got %v", err)
		}
	})

	t.Run("missing catalog entry aborts whole creation", func(t *testing.T) {
		ctrl, _, projects, works, materials, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "EUR"}, nil)
		works.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Tiling", Unit: "m2", BaseRate: 40, Currency: "EUR"}, nil)
		materials.EXPECT().GetByID(gomock.Any(), "m-gone").Return(entities.Material{}, nil)
		// Create is never called on the estimate repo.

		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ProjectID: "p-1",
			Title:     "Kitchen",
			Lines: []EstimateLineInput{
				{LineType: "work", RefID: "w-1", Quantity: 10},
				{LineType: "material", RefID: "m-gone", Quantity: 2},
			},
		})

		var nf *CatalogEntryNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected CatalogEntryNotFoundError, got %v", err)
		}
		if nf.Kind != entities.LineTypeMaterial || nf.RefID != "m-gone" {
			t.Fatalf("unexpected lookup failure: %+v", nf)
		}
	})

	t.Run("create success resolves lines and defaults", func(t *testing.T) {
		ctrl, repo, projects, works, materials, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "BRL"}, nil)
		works.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Tiling", Unit: "m2", BaseRate: 100, Currency: "BRL"}, nil)
		materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1", Name: "Cement", Unit: "bag", PricePerUnit: 7.5, Currency: "BRL"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.ProjectID != "p-1" || e.Title != "Kitchen" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Currency != "BRL" {
					t.Fatalf("expected currency inherited from project, got %q", e.Currency)
				}
				if e.CoefficientComplexity != 1 || e.CoefficientUrgency != 1 || e.CoefficientFloor != 1.05 {
					t.Fatalf("unexpected coefficients: %+v", e)
				}
				if e.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				if len(e.Lines) != 2 {
					t.Fatalf("expected 2 lines, got %d", len(e.Lines))
				}
				if e.Lines[0].Name != "Tiling" || e.Lines[0].Unit != "m2" || e.Lines[0].UnitPrice != 100 || e.Lines[0].Subtotal != 300 {
					t.Fatalf("unexpected work line: %+v", e.Lines[0])
				}
				if e.Lines[1].Name != "Cement" || e.Lines[1].UnitPrice != 7.5 || e.Lines[1].Subtotal != 15 {
					t.Fatalf("unexpected material line: %+v", e.Lines[1])
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateEstimateInput{
			ProjectID:        " p-1 ",
			Title:            " Kitchen ",
			CoefficientFloor: 1.05,
			Lines: []EstimateLineInput{
				{LineType: "work", RefID: "w-1", Quantity: 3},
				{LineType: "material", RefID: "m-1", Quantity: 2},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("explicit zero unit price overrides catalog", func(t *testing.T) {
		ctrl, repo, projects, works, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "EUR"}, nil)
		works.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Demolition", Unit: "h", BaseRate: 55, Currency: "EUR"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Lines[0].UnitPrice != 0 || e.Lines[0].Subtotal != 0 {
					t.Fatalf("expected zero override, got %+v", e.Lines[0])
				}
				return e, nil
			},
		)

		zero := 0.0
		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ProjectID: "p-1",
			Title:     "Goodwill",
			Lines:     []EstimateLineInput{{LineType: "work", RefID: "w-1", Quantity: 4, UnitPrice: &zero}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("line overrides win over catalog values", func(t *testing.T) {
		ctrl, repo, projects, works, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "EUR"}, nil)
		works.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Painting", Unit: "m2", BaseRate: 12, Currency: "EUR"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				l := e.Lines[0]
				if l.Name != "Ceiling painting" || l.Unit != "h" || l.UnitPrice != 20 || l.Currency != "USD" {
					t.Fatalf("expected overrides applied, got %+v", l)
				}
				if l.Subtotal != 100 {
					t.Fatalf("expected subtotal from override price, got %v", l.Subtotal)
				}
				return e, nil
			},
		)

		price := 20.0
		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ProjectID: "p-1",
			Title:     "Repaint",
			Lines: []EstimateLineInput{{
				LineType:  "work",
				RefID:     "w-1",
				Quantity:  5,
				Name:      "Ceiling painting",
				Unit:      "h",
				UnitPrice: &price,
				Currency:  "USD",
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		ctrl, repo, projects, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Currency: "EUR"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateEstimateInput{ProjectID: "p-1", Title: "Kitchen"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Title: "Kitchen"}, nil)

		e, err := uc.GetByID(context.Background(), " e-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "e-1" {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})
}

func TestEstimateUseCase_ListByProjectID(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.ListByProjectID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Estimate{{ID: "e-2"}, {ID: "e-1"}}, nil)

		list, err := uc.ListByProjectID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].ID != "e-2" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}

func TestEstimateUseCase_Totals(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.Totals(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("runs pricing pipeline", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := newEstimateMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{
			ID:                    "e-1",
			CoefficientComplexity: 1.2,
			CoefficientUrgency:    1.1,
			CoefficientFloor:      1,
			DiscountPercent:       10,
			MarkupPercent:         5,
			Lines: []entities.EstimateLine{
				{Quantity: 3, UnitPrice: 100},
			},
		}, nil)

		totals, err := uc.Totals(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.ItemsSubtotal != 300 || totals.AfterCoefficients != 396 || totals.Total != 374.22 {
			t.Fatalf("unexpected totals: %+v", totals)
		}
	})
}
