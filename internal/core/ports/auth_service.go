package ports

import (
	"context"

	"github.com/petowners/petregistry/internal/core/domain"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone"`
}

// LoginInput is the credential payload exchanged for a bearer token.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService covers registration, login and the caller's own profile.
type AuthService interface {
	Register(ctx context.Context, body Payload) (*domain.User, error)
	Login(ctx context.Context, body Payload) (string, *domain.User, error)
	Profile(ctx context.Context, principal *domain.Principal) (*domain.User, error)
}
