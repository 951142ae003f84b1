package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// CreatePetInput is the pet creation payload. BirthDate is YYYY-MM-DD.
type CreatePetInput struct {
	Name      string `json:"name"   validate:"max=100"`
	Gender    string `json:"gender" validate:"max=10"`
	BirthDate string `json:"birthDate"`
	BreedID   int64  `json:"breedId"`
}

// UpdatePetInput is a partial pet update. An explicit null birthDate
// clears it; a null breedId is ignored.
type UpdatePetInput struct {
	Name      domain.Optional[string] `json:"name"   validate:"omitempty,max=100"`
	Gender    domain.Optional[string] `json:"gender" validate:"omitempty,max=10"`
	BirthDate domain.Optional[string] `json:"birthDate"`
	BreedID   domain.Optional[int64]  `json:"breedId"`
}

// PetService manages pets. Listing is owner-scoped; a single pet is
// readable by anyone.
type PetService interface {
	List(ctx context.Context, principal *domain.Principal) ([]domain.PetDetail, error)
	Get(ctx context.Context, principal *domain.Principal, id int64) (*domain.PetDetail, error)
	Create(ctx context.Context, principal *domain.Principal, body Payload) (*domain.Pet, error)
	Update(ctx context.Context, principal *domain.Principal, id int64, body Payload) (*domain.Pet, error)
	// Delete returns the removed pet so the caller can echo its name.
	Delete(ctx context.Context, principal *domain.Principal, id int64) (*domain.Pet, error)
}
