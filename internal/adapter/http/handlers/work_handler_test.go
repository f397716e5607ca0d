package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkHandler_CreateWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkUseCase(ctrl)
		h := NewWorkHandler(uc)

		r := gin.New()
		r.POST("/v1/works", h.CreateWork)

		req := httptest.NewRequest(http.MethodPost, "/v1/works", bytes.NewBufferString(`{"unit":"m2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("name taken maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkUseCase(ctrl)
		h := NewWorkHandler(uc)

		r := gin.New()
		r.POST("/v1/works", h.CreateWork)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Work{}, usecase.ErrWorkNameTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/works", bytes.NewBufferString(`{"name":"Tiling"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkUseCase(ctrl)
		h := NewWorkHandler(uc)

		r := gin.New()
		r.POST("/v1/works", h.CreateWork)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.WorkInput{})).DoAndReturn(
			func(_ any, in usecase.WorkInput) (entities.Work, error) {
				if in.Name != "Tiling" || !in.IsActive {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Work{ID: "w-1", Name: "Tiling", Unit: "m2", BaseRate: 40, Currency: "EUR", IsActive: true}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/works", bytes.NewBufferString(`{"name":"Tiling","unit":"m2","base_rate":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["id"] != "w-1" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestWorkHandler_GetWorkByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkUseCase(ctrl)
	h := NewWorkHandler(uc)

	r := gin.New()
	r.GET("/v1/works/:id", h.GetWorkByID)

	uc.EXPECT().GetByID(gomock.Any(), "w-gone").Return(entities.Work{}, usecase.ErrWorkNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/works/w-gone", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkHandler_DeleteWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkUseCase(ctrl)
	h := NewWorkHandler(uc)

	r := gin.New()
	r.DELETE("/v1/works/:id", h.DeleteWork)

	uc.EXPECT().Delete(gomock.Any(), "w-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/works/w-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
