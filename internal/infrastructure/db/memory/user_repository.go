package memory

import (
	"context"
	"strings"

	"github.com/petowners/petregistry/internal/core/domain"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	user.ID = r.s.next("users")
	r.s.users[user.ID] = *cloneUser(*user)
	return nil
}

func cloneUser(u domain.User) *domain.User {
	u.Roles = append(domain.RoleList(nil), u.Roles...)
	if u.Phone != nil {
		phone := *u.Phone
		u.Phone = &phone
	}
	return &u
}
