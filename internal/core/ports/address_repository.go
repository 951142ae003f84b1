package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// AddressFilter carries the lookup-by-filter predicate for addresses.
// UserID is always enforced by the service layer.
type AddressFilter struct {
	UserID int64
}

// AddressRepository defines persistence operations for addresses.
type AddressRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Address, error)
	// FindBy returns matching addresses ordered by id.
	FindBy(ctx context.Context, filter AddressFilter) ([]domain.Address, error)
	// Create assigns the new id to a.ID.
	Create(ctx context.Context, a *domain.Address) error
	Update(ctx context.Context, a *domain.Address) error
	Delete(ctx context.Context, id int64) error
}
