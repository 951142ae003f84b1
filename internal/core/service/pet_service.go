package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/policy"
	"github.com/petowners/petregistry/internal/core/ports"
)

var petRequired = []string{"name", "gender", "breedId"}

// PetService manages pets. Listing is scoped to the caller, a single pet is
// public, and mutations need the owner or an admin.
type PetService struct {
	pets      ports.PetRepository
	breeds    ports.BreedRepository
	users     ports.UserRepository
	validator ports.InputValidator
	log       zerolog.Logger
}

func NewPetService(
	pets ports.PetRepository,
	breeds ports.BreedRepository,
	users ports.UserRepository,
	validator ports.InputValidator,
	log zerolog.Logger,
) *PetService {
	return &PetService{pets: pets, breeds: breeds, users: users, validator: validator, log: log}
}

// List returns the caller's pets with their breeds resolved. Owner is left
// nil; every row belongs to the caller.
func (s *PetService) List(ctx context.Context, p *domain.Principal) ([]domain.PetDetail, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if !policy.CanAccess(p, policy.PetResource{OwnerEmail: p.Email}, policy.ActionList) {
		return nil, domain.ErrNotAuthenticated
	}

	pets, err := s.pets.FindBy(ctx, ports.PetFilter{OwnerID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	breeds := make(map[int64]*domain.Breed)
	out := make([]domain.PetDetail, 0, len(pets))
	for _, pet := range pets {
		b, seen := breeds[pet.BreedID]
		if !seen {
			if b, err = s.breed(ctx, pet.BreedID); err != nil {
				return nil, err
			}
			breeds[pet.BreedID] = b
		}
		out = append(out, domain.PetDetail{Pet: pet, Breed: b})
	}
	return out, nil
}

// Get returns any pet by id with breed and owner resolved. No ownership
// check is applied.
func (s *PetService) Get(ctx context.Context, p *domain.Principal, id int64) (*domain.PetDetail, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrPetNotFound, "pet", id)
	}
	if !policy.CanAccess(p, policy.PetResource{}, policy.ActionShow) {
		return nil, domain.ErrAccessDenied
	}

	b, err := s.breed(ctx, pet.BreedID)
	if err != nil {
		return nil, err
	}
	owner, err := s.owner(ctx, pet.OwnerID)
	if err != nil {
		return nil, err
	}
	return &domain.PetDetail{Pet: *pet, Breed: b, Owner: owner}, nil
}

// Create stores a new pet owned by the caller.
func (s *PetService) Create(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Pet, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if !policy.CanAccess(p, policy.PetResource{OwnerEmail: p.Email}, policy.ActionCreate) {
		return nil, domain.ErrNotAuthenticated
	}

	var in ports.CreatePetInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Gender == "" || in.BreedID == 0 {
		return nil, domain.MissingFields(petRequired...)
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}
	if err := s.requireBreed(ctx, in.BreedID); err != nil {
		return nil, err
	}

	pet := &domain.Pet{
		Name:    in.Name,
		Gender:  in.Gender,
		BreedID: in.BreedID,
		OwnerID: p.ID,
	}
	if in.BirthDate != "" {
		d, err := domain.ParseBirthDate(in.BirthDate)
		if err != nil {
			return nil, err
		}
		pet.BirthDate = &d
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}

	s.log.Info().Int64("pet_id", pet.ID).Int64("owner_id", p.ID).Int64("breed_id", pet.BreedID).Msg("pet created")
	return pet, nil
}

// Update applies the present fields of the payload. Nothing is stored when
// any field is rejected.
func (s *PetService) Update(ctx context.Context, p *domain.Principal, id int64, body ports.Payload) (*domain.Pet, error) {
	current, err := s.authorized(ctx, p, id, policy.ActionUpdate)
	if err != nil {
		return nil, err
	}

	var in ports.UpdatePetInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}

	pet := *current
	if in.Name.Present() {
		pet.Name = in.Name.Value
	}
	if in.Gender.Present() {
		pet.Gender = in.Gender.Value
	}
	if in.BirthDate.Null {
		pet.BirthDate = nil
	} else if in.BirthDate.Set {
		d, err := domain.ParseBirthDate(in.BirthDate.Value)
		if err != nil {
			return nil, err
		}
		pet.BirthDate = &d
	}
	if in.BreedID.Present() {
		if err := s.requireBreed(ctx, in.BreedID.Value); err != nil {
			return nil, err
		}
		pet.BreedID = in.BreedID.Value
	}

	if err := s.pets.Update(ctx, &pet); err != nil {
		return nil, fmt.Errorf("update pet %d: %w", id, err)
	}

	s.log.Info().Int64("pet_id", id).Int64("principal_id", p.ID).Msg("pet updated")
	return &pet, nil
}

// Delete removes a pet and returns it.
func (s *PetService) Delete(ctx context.Context, p *domain.Principal, id int64) (*domain.Pet, error) {
	pet, err := s.authorized(ctx, p, id, policy.ActionDelete)
	if err != nil {
		return nil, err
	}

	if err := s.pets.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete pet %d: %w", id, err)
	}

	s.log.Info().Int64("pet_id", id).Int64("principal_id", p.ID).Msg("pet deleted")
	return pet, nil
}

// authorized runs authenticate, fetch and the owner-or-admin check.
func (s *PetService) authorized(ctx context.Context, p *domain.Principal, id int64, action policy.Action) (*domain.Pet, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}

	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrPetNotFound, "pet", id)
	}

	var ownerEmail string
	owner, err := s.owner(ctx, pet.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		ownerEmail = owner.Email
	}

	if !policy.CanAccess(p, policy.PetResource{OwnerEmail: ownerEmail}, action) {
		return nil, domain.ErrAccessDenied
	}
	return pet, nil
}

// requireBreed rejects payloads that reference a breed that does not exist.
func (s *PetService) requireBreed(ctx context.Context, id int64) error {
	b, err := s.breed(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBreedReference
	}
	return nil
}

// breed resolves a breed, nil when it does not exist.
func (s *PetService) breed(ctx context.Context, id int64) (*domain.Breed, error) {
	if id <= 0 {
		return nil, nil
	}
	b, err := s.breeds.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find breed %d: %w", id, err)
	}
	return b, nil
}

// owner resolves a pet owner, nil when the user no longer exists.
func (s *PetService) owner(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find owner %d: %w", id, err)
	}
	return u, nil
}
