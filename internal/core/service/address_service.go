package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/policy"
	"github.com/petowners/petregistry/internal/core/ports"
)

var addressRequired = []string{"street", "city", "state", "zipCode"}

// AddressService manages addresses. Every operation is owner-only and a
// mismatched owner is reported as not found.
type AddressService struct {
	repo      ports.AddressRepository
	validator ports.InputValidator
	log       zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, validator ports.InputValidator, log zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, validator: validator, log: log}
}

// List returns the caller's addresses.
func (s *AddressService) List(ctx context.Context, p *domain.Principal) ([]domain.Address, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if !policy.CanAccess(p, policy.AddressResource{OwnerID: p.ID}, policy.ActionList) {
		return nil, domain.ErrNotAuthenticated
	}

	addresses, err := s.repo.FindBy(ctx, ports.AddressFilter{UserID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// Get returns one of the caller's addresses.
func (s *AddressService) Get(ctx context.Context, p *domain.Principal, id int64) (*domain.Address, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	return s.owned(ctx, p, id, policy.ActionShow)
}

// Create stores a new address owned by the caller.
func (s *AddressService) Create(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Address, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if !policy.CanAccess(p, policy.AddressResource{OwnerID: p.ID}, policy.ActionCreate) {
		return nil, domain.ErrNotAuthenticated
	}

	var in ports.CreateAddressInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if in.Street == "" || in.City == "" || in.State == "" || in.ZipCode == "" {
		return nil, domain.MissingFields(addressRequired...)
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}

	a := &domain.Address{
		Street:   in.Street,
		Number:   in.Number,
		District: in.District,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		UserID:   p.ID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	s.log.Info().Int64("address_id", a.ID).Int64("user_id", p.ID).Msg("address created")
	return a, nil
}

// Update applies the present fields of the payload. The owner never changes.
func (s *AddressService) Update(ctx context.Context, p *domain.Principal, id int64, body ports.Payload) (*domain.Address, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	current, err := s.owned(ctx, p, id, policy.ActionUpdate)
	if err != nil {
		return nil, err
	}

	var in ports.UpdateAddressInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}

	a := *current
	if in.Street.Present() {
		a.Street = in.Street.Value
	}
	if in.Number.Set {
		a.Number = in.Number.Ptr()
	}
	if in.District.Set {
		a.District = in.District.Ptr()
	}
	if in.City.Present() {
		a.City = in.City.Value
	}
	if in.State.Present() {
		a.State = in.State.Value
	}
	if in.ZipCode.Present() {
		a.ZipCode = in.ZipCode.Value
	}

	if err := s.repo.Update(ctx, &a); err != nil {
		return nil, fmt.Errorf("update address %d: %w", id, err)
	}

	s.log.Info().Int64("address_id", id).Int64("user_id", p.ID).Msg("address updated")
	return &a, nil
}

// Delete removes one of the caller's addresses.
func (s *AddressService) Delete(ctx context.Context, p *domain.Principal, id int64) error {
	if err := requirePrincipal(p); err != nil {
		return err
	}
	if _, err := s.owned(ctx, p, id, policy.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}

	s.log.Info().Int64("address_id", id).Int64("user_id", p.ID).Msg("address deleted")
	return nil
}

// owned fetches an address and hides it from anyone but its owner.
func (s *AddressService) owned(ctx context.Context, p *domain.Principal, id int64, action policy.Action) (*domain.Address, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrAddressNotFound, "address", id)
	}
	if !policy.CanAccess(p, policy.AddressResource{OwnerID: a.UserID}, action) {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}
