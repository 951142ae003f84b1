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

// BreedService manages the breed catalog. The catalog carries no ownership
// and the policy leaves every action open.
type BreedService struct {
	repo      ports.BreedRepository
	validator ports.InputValidator
	log       zerolog.Logger
}

func NewBreedService(repo ports.BreedRepository, validator ports.InputValidator, log zerolog.Logger) *BreedService {
	return &BreedService{repo: repo, validator: validator, log: log}
}

func (s *BreedService) List(ctx context.Context, p *domain.Principal) ([]domain.Breed, error) {
	if err := authorizeBreed(p, policy.ActionList); err != nil {
		return nil, err
	}
	breeds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

func (s *BreedService) Get(ctx context.Context, p *domain.Principal, id int64) (*domain.Breed, error) {
	if err := authorizeBreed(p, policy.ActionShow); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrBreedNotFound, "breed", id)
	}
	return b, nil
}

func (s *BreedService) Create(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Breed, error) {
	if err := authorizeBreed(p, policy.ActionCreate); err != nil {
		return nil, err
	}

	var in ports.CreateBreedInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Species == "" {
		return nil, domain.MissingFields("name", "species")
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}

	b := &domain.Breed{Name: in.Name, Species: in.Species}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create breed: %w", err)
	}

	s.log.Info().Int64("breed_id", b.ID).Str("species", b.Species).Msg("breed created")
	return b, nil
}

func (s *BreedService) Update(ctx context.Context, p *domain.Principal, id int64, body ports.Payload) (*domain.Breed, error) {
	current, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeBreed(p, policy.ActionUpdate); err != nil {
		return nil, err
	}

	var in ports.UpdateBreedInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, &in); err != nil {
		return nil, err
	}

	b := *current
	if in.Name.Present() {
		b.Name = in.Name.Value
	}
	if in.Species.Present() {
		b.Species = in.Species.Value
	}

	if err := s.repo.Update(ctx, &b); err != nil {
		return nil, fmt.Errorf("update breed %d: %w", id, err)
	}

	s.log.Info().Int64("breed_id", id).Msg("breed updated")
	return &b, nil
}

// Delete removes a breed. Pets still pointing at it make the store refuse
// with domain.ErrBreedInUse.
func (s *BreedService) Delete(ctx context.Context, p *domain.Principal, id int64) error {
	if _, err := s.Get(ctx, p, id); err != nil {
		return err
	}
	if err := authorizeBreed(p, policy.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBreedInUse) {
			return domain.ErrBreedInUse
		}
		return fmt.Errorf("delete breed %d: %w", id, err)
	}

	s.log.Info().Int64("breed_id", id).Msg("breed deleted")
	return nil
}

func authorizeBreed(p *domain.Principal, action policy.Action) error {
	if policy.CanAccess(p, policy.BreedResource{}, action) {
		return nil
	}
	if p == nil {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrAccessDenied
}
