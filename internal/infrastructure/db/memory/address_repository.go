package memory

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type AddressRepository struct {
	s *Store
}

func (r *AddressRepository) FindByID(_ context.Context, id int64) (*domain.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.addresses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *AddressRepository) FindBy(_ context.Context, f ports.AddressFilter) ([]domain.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Address, 0)
	for _, id := range sortedKeys(r.s.addresses) {
		a := r.s.addresses[id]
		if a.UserID == f.UserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AddressRepository) Create(_ context.Context, a *domain.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.next("addresses")
	r.s.addresses[a.ID] = *a
	return nil
}

func (r *AddressRepository) Update(_ context.Context, a *domain.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.addresses[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *a
	updated.UserID = current.UserID
	r.s.addresses[a.ID] = updated
	return nil
}

func (r *AddressRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.addresses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.addresses, id)
	return nil
}
