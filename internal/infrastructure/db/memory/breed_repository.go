package memory

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

type BreedRepository struct {
	s *Store
}

func (r *BreedRepository) FindByID(_ context.Context, id int64) (*domain.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *BreedRepository) FindAll(_ context.Context) ([]domain.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Breed, 0, len(r.s.breeds))
	for _, id := range sortedKeys(r.s.breeds) {
		out = append(out, r.s.breeds[id])
	}
	return out, nil
}

func (r *BreedRepository) Create(_ context.Context, b *domain.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.next("breeds")
	r.s.breeds[b.ID] = *b
	return nil
}

func (r *BreedRepository) Update(_ context.Context, b *domain.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.breeds[b.ID] = *b
	return nil
}

// Delete refuses while any pet references the breed.
func (r *BreedRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.pets {
		if p.BreedID == id {
			return domain.ErrBreedInUse
		}
	}
	delete(r.s.breeds, id)
	return nil
}
