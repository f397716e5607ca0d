package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("name taken maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Material{}, usecase.ErrMaterialNameTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"name":"Cement"}`))
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
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Material{ID: "m-1", Name: "Cement", Currency: "EUR"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"name":"Cement","unit":"bag","price_per_unit":7.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc)

	r := gin.New()
	r.GET("/v1/materials", h.ListMaterials)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Material{{ID: "m-1", Name: "Cement"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/materials", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
