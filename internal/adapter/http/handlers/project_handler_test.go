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

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.ProjectInput{})).DoAndReturn(
			func(_ any, in usecase.ProjectInput) (entities.Project, error) {
				if in.Name != "Villa Sul" || in.ClientName != "J. Ramos" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Project{ID: "p-1", Name: "Villa Sul", ClientName: "J. Ramos", Currency: "EUR"}, nil
			},
		)

		body := `{"name":"Villa Sul","client_name":"J. Ramos"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
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
		if resp["id"] != "p-1" || resp["currency"] != "EUR" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"client_name":"J. Ramos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetProjectByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id", h.GetProjectByID)

	uc.EXPECT().GetByID(gomock.Any(), "p-gone").Return(entities.Project{}, usecase.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-gone", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p-2"}, {ID: "p-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "p-2" {
		t.Fatalf("unexpected body: %v", resp)
	}
}
