package validation

import (
	"strings"
	"testing"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

func validUser() *domain.User {
	return &domain.User{
		Email:     "ana@example.com",
		Password:  "longenough",
		FirstName: "Ana",
		LastName:  "Lima",
	}
}

func TestValidateUser_Valid(t *testing.T) {
	if got := New().ValidateUser(validUser()); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestValidateUser_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *domain.User)
		field  string
		want   string
	}{
		{"missing email", func(u *domain.User) { u.Email = "" }, "email", "email is required"},
		{"bad email", func(u *domain.User) { u.Email = "nope" }, "email", "email must be a valid email"},
		{"short password", func(u *domain.User) { u.Password = "short" }, "password", "password must be at least 8 characters long"},
		{"missing first name", func(u *domain.User) { u.FirstName = "" }, "firstName", "firstName is required"},
		{"long last name", func(u *domain.User) { u.LastName = strings.Repeat("x", 101) }, "lastName", "lastName must be at most 100 characters long"},
		{"long phone", func(u *domain.User) { p := strings.Repeat("9", 21); u.Phone = &p }, "phone", "phone must be at most 20 characters long"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)

			got := v.ValidateUser(u)
			if got[tt.field] != tt.want {
				t.Fatalf("field %q: expected %q, got %q (all: %v)", tt.field, tt.want, got[tt.field], got)
			}
		})
	}
}

func TestValidateUser_ReportsEveryField(t *testing.T) {
	got := New().ValidateUser(&domain.User{})
	for _, field := range []string{"email", "password", "firstName", "lastName"} {
		if _, ok := got[field]; !ok {
			t.Errorf("expected violation for %q in %v", field, got)
		}
	}
	if _, ok := got["phone"]; ok {
		t.Errorf("phone is optional, got %v", got)
	}
}

func TestValidateUser_PasswordFitsBcrypt(t *testing.T) {
	u := validUser()
	u.Password = strings.Repeat("p", 73)
	if got := New().ValidateUser(u); got["password"] != "password must be at most 72 characters long" {
		t.Fatalf("unexpected violations: %v", got)
	}
}

func TestStruct_Inputs(t *testing.T) {
	v := New()

	create := ports.CreateBreedInput{Name: "Beagle", Species: strings.Repeat("s", 51)}
	if got := v.Struct(&create); got["species"] != "species must be at most 50 characters long" {
		t.Fatalf("create breed: %v", got)
	}

	long := strings.Repeat("x", 21)
	addr := ports.CreateAddressInput{Street: "Main", City: "Lisbon", State: "LX", ZipCode: "1000", Number: &long}
	if got := v.Struct(&addr); len(got) != 1 || got["number"] == "" {
		t.Fatalf("create address: %v", got)
	}

	update := ports.UpdatePetInput{
		Name:    domain.Some(strings.Repeat("r", 101)),
		Gender:  domain.Null[string](),
		BreedID: domain.Some(int64(3)),
	}
	if got := v.Struct(&update); len(got) != 1 || got["name"] != "name must be at most 100 characters long" {
		t.Fatalf("update pet: %v", got)
	}

	if got := v.Struct(&ports.UpdateAddressInput{City: domain.Some("Porto")}); len(got) != 0 {
		t.Fatalf("expected a valid partial update, got %v", got)
	}
}
