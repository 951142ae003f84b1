package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// CreateBreedInput is the breed creation payload.
type CreateBreedInput struct {
	Name    string `json:"name"    validate:"max=100"`
	Species string `json:"species" validate:"max=50"`
}

// UpdateBreedInput is a partial breed update.
type UpdateBreedInput struct {
	Name    domain.Optional[string] `json:"name"    validate:"omitempty,max=100"`
	Species domain.Optional[string] `json:"species" validate:"omitempty,max=50"`
}

// BreedService manages the shared breed catalog.
type BreedService interface {
	List(ctx context.Context, principal *domain.Principal) ([]domain.Breed, error)
	Get(ctx context.Context, principal *domain.Principal, id int64) (*domain.Breed, error)
	Create(ctx context.Context, principal *domain.Principal, body Payload) (*domain.Breed, error)
	Update(ctx context.Context, principal *domain.Principal, id int64, body Payload) (*domain.Breed, error)
	Delete(ctx context.Context, principal *domain.Principal, id int64) error
}
