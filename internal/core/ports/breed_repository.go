package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// BreedRepository defines persistence operations for the breed catalog.
// Delete returns domain.ErrBreedInUse while pets still reference the breed.
type BreedRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Breed, error)
	FindAll(ctx context.Context) ([]domain.Breed, error)
	Create(ctx context.Context, b *domain.Breed) error
	Update(ctx context.Context, b *domain.Breed) error
	Delete(ctx context.Context, id int64) error
}
