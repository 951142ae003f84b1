package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/infrastructure/db/memory"
	"github.com/petowners/petregistry/internal/infrastructure/validation"
)

// body is a ports.Payload over a literal JSON string.
type body string

func (b body) Decode(dst any) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "{}" {
		return domain.ErrInvalidJSON
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return domain.ErrInvalidJSON
	}
	return nil
}

// mustNotDecode fails the test when a service reads the body too early.
type mustNotDecode struct{ t *testing.T }

func (m mustNotDecode) Decode(any) error {
	m.t.Helper()
	m.t.Fatal("payload decoded before authorization")
	return nil
}

type fixture struct {
	store *memory.Store
	owner *domain.Principal
	other *domain.Principal
	admin *domain.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore()}
	f.owner = f.user(t, "owner@example.com", domain.RoleUser)
	f.other = f.user(t, "other@example.com", domain.RoleUser)
	f.admin = f.user(t, "admin@example.com", domain.RoleUser, domain.RoleAdmin)
	return f
}

func (f *fixture) user(t *testing.T, email string, roles ...string) *domain.Principal {
	t.Helper()
	u := &domain.User{Email: email, Password: "hash", FirstName: "F", LastName: "L", Roles: roles}
	if err := f.store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return domain.PrincipalFor(u)
}

func (f *fixture) breed(t *testing.T, name string) *domain.Breed {
	t.Helper()
	b := &domain.Breed{Name: name, Species: "dog"}
	if err := f.store.Breeds().Create(context.Background(), b); err != nil {
		t.Fatalf("seed breed: %v", err)
	}
	return b
}

func (f *fixture) addresses() *AddressService {
	return NewAddressService(f.store.Addresses(), validation.New(), zerolog.Nop())
}

func (f *fixture) breeds() *BreedService {
	return NewBreedService(f.store.Breeds(), validation.New(), zerolog.Nop())
}

func (f *fixture) pets() *PetService {
	return NewPetService(f.store.Pets(), f.store.Breeds(), f.store.Users(), validation.New(), zerolog.Nop())
}

// assertErr checks both the error kind and the client-facing message.
func assertErr(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected kind %v, got %v", kind, err)
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T", err)
	}
	if msg != "" && de.Message != msg {
		t.Fatalf("expected message %q, got %q", msg, de.Message)
	}
}
