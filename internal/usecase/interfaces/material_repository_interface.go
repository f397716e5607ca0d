package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IMaterialRepository abstracts DynamoDB persistence for the materials
// catalog. Same shape and conventions as IWorkRepository.

type IMaterialRepository interface {
	Create(ctx context.Context, mat entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	GetByName(ctx context.Context, name string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, mat entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}
