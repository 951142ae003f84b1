package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// CreateAddressInput is the address creation payload.
type CreateAddressInput struct {
	Street   string  `json:"street"   validate:"max=255"`
	Number   *string `json:"number"   validate:"omitempty,max=20"`
	District *string `json:"district" validate:"omitempty,max=100"`
	City     string  `json:"city"     validate:"max=100"`
	State    string  `json:"state"    validate:"max=100"`
	ZipCode  string  `json:"zipCode"  validate:"max=20"`
}

// UpdateAddressInput is a partial update. Only present keys are applied;
// number and district are cleared by an explicit null.
type UpdateAddressInput struct {
	Street   domain.Optional[string] `json:"street"   validate:"omitempty,max=255"`
	Number   domain.Optional[string] `json:"number"   validate:"omitempty,max=20"`
	District domain.Optional[string] `json:"district" validate:"omitempty,max=100"`
	City     domain.Optional[string] `json:"city"     validate:"omitempty,max=100"`
	State    domain.Optional[string] `json:"state"    validate:"omitempty,max=100"`
	ZipCode  domain.Optional[string] `json:"zipCode"  validate:"omitempty,max=20"`
}

// AddressService manages the caller's own addresses.
type AddressService interface {
	List(ctx context.Context, principal *domain.Principal) ([]domain.Address, error)
	Get(ctx context.Context, principal *domain.Principal, id int64) (*domain.Address, error)
	Create(ctx context.Context, principal *domain.Principal, body Payload) (*domain.Address, error)
	Update(ctx context.Context, principal *domain.Principal, id int64, body Payload) (*domain.Address, error)
	Delete(ctx context.Context, principal *domain.Principal, id int64) error
}
