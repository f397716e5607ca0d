package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewWorkUseCase(nil)
		_, err := uc.Create(context.Background(), WorkInput{Name: "   "})
		if !errors.Is(err, ErrInvalidWorkName) {
			t.Fatalf("expected ErrInvalidWorkName, got %v", err)
		}
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByName(gomock.Any(), "Tiling").Return(entities.Work{ID: "w-1"}, nil)

		_, err := uc.Create(context.Background(), WorkInput{Name: "Tiling"})
		if !errors.Is(err, ErrWorkNameTaken) {
			t.Fatalf("expected ErrWorkNameTaken, got %v", err)
		}
	})

	t.Run("create success with currency default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByName(gomock.Any(), "Tiling").Return(entities.Work{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Work{})).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) {
				if w.ID == "" || w.Name != "Tiling" || w.Unit != "m2" || w.BaseRate != 42.5 {
					t.Fatalf("unexpected work: %+v", w)
				}
				if w.Currency != "EUR" {
					t.Fatalf("expected default currency, got %q", w.Currency)
				}
				if w.CreatedAt.IsZero() || w.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return w, nil
			},
		)

		res, err := uc.Create(context.Background(), WorkInput{Name: " Tiling ", Unit: "m2", BaseRate: 42.5, IsActive: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidWorkID) {
			t.Fatalf("expected ErrInvalidWorkID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{}, nil)

		_, err := uc.GetByID(context.Background(), "w-1")
		if !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})
}

func TestWorkUseCase_Update(t *testing.T) {
	t.Run("renaming to a taken name fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Tiling"}, nil)
		repo.EXPECT().GetByName(gomock.Any(), "Painting").Return(entities.Work{ID: "w-2", Name: "Painting"}, nil)

		_, err := uc.Update(context.Background(), "w-1", WorkInput{Name: "Painting"})
		if !errors.Is(err, ErrWorkNameTaken) {
			t.Fatalf("expected ErrWorkNameTaken, got %v", err)
		}
	})

	t.Run("same name skips uniqueness check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Tiling", Currency: "EUR"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Work{})).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) {
				if w.BaseRate != 50 || w.Currency != "EUR" {
					t.Fatalf("unexpected work: %+v", w)
				}
				if w.UpdatedAt.IsZero() {
					t.Fatalf("expected updated_at")
				}
				return w, nil
			},
		)

		_, err := uc.Update(context.Background(), "w-1", WorkInput{Name: "Tiling", BaseRate: 50, IsActive: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{}, nil)

		if err := uc.Delete(context.Background(), "w-1"); !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Work{ID: "w-1", Name: "Tiling"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "w-1").Return(nil)

		if err := uc.Delete(context.Background(), " w-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
