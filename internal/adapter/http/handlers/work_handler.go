package handlers

import (
	"errors"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkPayload = pkg.NewDomainErrorSimple("INVALID_WORK_INPUT", "Invalid work payload", http.StatusBadRequest)
)

// WorkHandler handles HTTP requests for the works catalog.

type WorkHandler struct {
	usecase usecase.IWorkUseCase
}

func NewWorkHandler(uc usecase.IWorkUseCase) *WorkHandler {
	return &WorkHandler{usecase: uc}
}

func (h *WorkHandler) CreateWork(c *gin.Context) {
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	work, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWork(work))
}

func (h *WorkHandler) GetWorkByID(c *gin.Context) {
	work, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) ListWorks(c *gin.Context) {
	works, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkList(works))
}

func (h *WorkHandler) UpdateWork(c *gin.Context) {
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	work, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) DeleteWork(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID), errors.Is(err, usecase.ErrInvalidWorkName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNameTaken):
		return pkg.NewDomainErrorSimple("WORK_NAME_TAKEN", "A work with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
