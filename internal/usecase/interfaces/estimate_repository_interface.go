package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for the Estimate
// aggregate.
//
// Contract required by the pricing engine:
//   - Create writes the estimate and all its lines as a single item, so a
//     failed creation never leaves a partial aggregate behind.
//   - ListByProjectID returns estimates newest-created-first.
//   - Reads return a zero-value Estimate (empty ID) when nothing matches.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
}
