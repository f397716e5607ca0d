package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), ProjectInput{Name: "   "})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("create success with currency default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.Name != "Villa Sul" || p.ClientName != "J. Ramos" {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Currency != "EUR" {
					t.Fatalf("expected default currency, got %q", p.Currency)
				}
				if p.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), ProjectInput{Name: " Villa Sul ", ClientName: " J. Ramos "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("explicit currency kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Currency != "BRL" {
					t.Fatalf("expected BRL, got %q", p.Currency)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), ProjectInput{Name: "Obra Norte", Currency: "BRL"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("success keeps currency when blank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Name: "Villa Sul", Currency: "BRL"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Name != "Villa Sul II" || p.Currency != "BRL" {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.Update(context.Background(), "p-1", ProjectInput{Name: "Villa Sul II"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
