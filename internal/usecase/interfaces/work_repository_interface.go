package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IWorkRepository abstracts DynamoDB persistence for the works catalog.
//
// GetByName backs the unique-name rule and uses the name-index GSI.
// Reads return a zero-value Work (empty ID) when nothing matches.

type IWorkRepository interface {
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
	GetByName(ctx context.Context, name string) (entities.Work, error)
	List(ctx context.Context) ([]entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id string) error
}
