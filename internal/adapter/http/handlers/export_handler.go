package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams rendered estimate documents as downloads.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

func (h *ExportHandler) ExportEstimatePDF(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.usecase.ExportPDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate_%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *ExportHandler) ExportEstimateSpreadsheet(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.usecase.ExportSpreadsheet(c.Request.Context(), id)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate_%s.xlsx", id))
	c.Data(http.StatusOK, spreadsheetContentType, doc)
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
