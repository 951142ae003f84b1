package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	validator ports.UserValidator
	tokens    ports.TokenIssuer
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	validator ports.UserValidator,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		validator: validator,
		tokens:    tokens,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a user with the default role. A taken email is rejected
// before the candidate is built or validated.
func (s *AuthService) Register(ctx context.Context, body ports.Payload) (*domain.User, error) {
	var in ports.RegisterInput
	if err := body.Decode(&in); err != nil {
		return nil, err
	}

	if in.Email != "" {
		existing, err := s.users.FindByEmail(ctx, in.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("register: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	user := &domain.User{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		CreatedAt: s.now(),
	}

	if violations := s.validator.ValidateUser(user); len(violations) > 0 {
		return nil, domain.ValidationFailed(violations)
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, domain.ErrBadRequest) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}
	user.Password = hash
	user.Roles = domain.RoleList{domain.RoleUser}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and returns a bearer token for the user.
func (s *AuthService) Login(ctx context.Context, body ports.Payload) (string, *domain.User, error) {
	var in ports.LoginInput
	if err := body.Decode(&in); err != nil {
		return "", nil, err
	}
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if s.hasher.Compare(user.Password, in.Password) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.PrincipalFor(user))
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Debug().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Profile returns the stored user behind the principal.
func (s *AuthService) Profile(ctx context.Context, p *domain.Principal) (*domain.User, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}
