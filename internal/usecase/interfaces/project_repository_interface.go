package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for projects.
// Reads return a zero-value Project (empty ID) when nothing matches.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
