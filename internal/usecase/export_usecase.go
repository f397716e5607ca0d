package usecase

import (
	"context"
	"errors"
	"strings"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
)

var ErrRendererNotConfigured = errors.New("document renderer not configured")

// IExportUseCase renders a stored estimate into a downloadable document.

type IExportUseCase interface {
	ExportPDF(ctx context.Context, estimateID string) ([]byte, error)
	ExportSpreadsheet(ctx context.Context, estimateID string) ([]byte, error)
}

type ExportUseCase struct {
	estimateRepo interfaces.IEstimateRepository
	renderer     interfaces.IDocumentRenderer
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(estimateRepo interfaces.IEstimateRepository, renderer interfaces.IDocumentRenderer) *ExportUseCase {
	return &ExportUseCase{estimateRepo: estimateRepo, renderer: renderer}
}

func (u *ExportUseCase) ExportPDF(ctx context.Context, estimateID string) ([]byte, error) {
	e, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderPDF(e)
}

func (u *ExportUseCase) ExportSpreadsheet(ctx context.Context, estimateID string) ([]byte, error) {
	e, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderSpreadsheet(e)
}

func (u *ExportUseCase) loadEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	if u.renderer == nil {
		return entities.Estimate{}, ErrRendererNotConfigured
	}
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
