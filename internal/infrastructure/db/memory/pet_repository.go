package memory

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type PetRepository struct {
	s *Store
}

func (r *PetRepository) FindByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *PetRepository) FindBy(_ context.Context, f ports.PetFilter) ([]domain.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Pet, 0)
	for _, id := range sortedKeys(r.s.pets) {
		p := r.s.pets[id]
		if f.OwnerID != 0 && p.OwnerID != f.OwnerID {
			continue
		}
		if f.BreedID != 0 && p.BreedID != f.BreedID {
			continue
		}
		out = append(out, *clonePet(p))
	}
	return out, nil
}

func (r *PetRepository) Create(_ context.Context, p *domain.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return domain.ErrBreedReference
	}
	p.ID = r.s.next("pets")
	r.s.pets[p.ID] = *clonePet(*p)
	return nil
}

// Update keeps the stored owner; ownership is never reassigned.
func (r *PetRepository) Update(_ context.Context, p *domain.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return domain.ErrBreedReference
	}
	updated := *clonePet(*p)
	updated.OwnerID = current.OwnerID
	r.s.pets[p.ID] = updated
	return nil
}

func (r *PetRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.pets, id)
	return nil
}

func clonePet(p domain.Pet) *domain.Pet {
	if p.BirthDate != nil {
		d := *p.BirthDate
		p.BirthDate = &d
	}
	return &p
}
