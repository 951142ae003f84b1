package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// PetFilter carries the lookup-by-filter predicate for pets. Zero fields
// are ignored.
type PetFilter struct {
	OwnerID int64
	BreedID int64
}

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Pet, error)
	// FindBy returns matching pets ordered by id.
	FindBy(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	Create(ctx context.Context, p *domain.Pet) error
	Update(ctx context.Context, p *domain.Pet) error
	Delete(ctx context.Context, id int64) error
}
