package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// UserRepository persists registered users. Lookups that match nothing
// return domain.ErrNotFound; Create returns domain.ErrEmailTaken when the
// unique email index rejects the row.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
