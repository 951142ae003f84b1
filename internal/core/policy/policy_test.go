package policy

import (
	"testing"

	"github.com/petowners/petregistry/internal/core/domain"
)

func TestCanAccess_Address(t *testing.T) {
	owner := &domain.Principal{ID: 1, Email: "owner@example.com", Roles: domain.RoleList{domain.RoleUser}}
	other := &domain.Principal{ID: 2, Email: "other@example.com", Roles: domain.RoleList{domain.RoleUser}}
	admin := &domain.Principal{ID: 3, Email: "admin@example.com", Roles: domain.RoleList{domain.RoleUser, domain.RoleAdmin}}

	actions := []Action{ActionList, ActionShow, ActionCreate, ActionUpdate, ActionDelete}
	res := AddressResource{OwnerID: 1}

	for _, a := range actions {
		if !CanAccess(owner, res, a) {
			t.Fatalf("owner denied %s", a)
		}
		if CanAccess(other, res, a) {
			t.Fatalf("non-owner allowed %s", a)
		}
		if CanAccess(admin, res, a) {
			t.Fatalf("admin must not override address ownership on %s", a)
		}
		if CanAccess(nil, res, a) {
			t.Fatalf("anonymous allowed %s", a)
		}
	}
}

func TestCanAccess_Pet(t *testing.T) {
	owner := &domain.Principal{ID: 1, Email: "owner@example.com"}
	other := &domain.Principal{ID: 2, Email: "other@example.com"}
	admin := &domain.Principal{ID: 3, Email: "admin@example.com", Roles: domain.RoleList{domain.RoleAdmin}}
	res := PetResource{OwnerEmail: "owner@example.com"}

	tests := []struct {
		name      string
		principal *domain.Principal
		action    Action
		want      bool
	}{
		{"anonymous show", nil, ActionShow, true},
		{"other show", other, ActionShow, true},
		{"anonymous list", nil, ActionList, false},
		{"user list", other, ActionList, true},
		{"anonymous create", nil, ActionCreate, false},
		{"user create", other, ActionCreate, true},
		{"owner update", owner, ActionUpdate, true},
		{"owner delete", owner, ActionDelete, true},
		{"other update", other, ActionUpdate, false},
		{"other delete", other, ActionDelete, false},
		{"admin update", admin, ActionUpdate, true},
		{"admin delete", admin, ActionDelete, true},
		{"anonymous update", nil, ActionUpdate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.principal, res, tt.action); got != tt.want {
				t.Fatalf("CanAccess = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccess_PetWithoutOwnerEmail(t *testing.T) {
	p := &domain.Principal{ID: 1, Email: ""}
	if CanAccess(p, PetResource{}, ActionUpdate) {
		t.Fatalf("unresolved owner must not match an empty principal email")
	}
}

func TestCanAccess_BreedIsOpen(t *testing.T) {
	for _, a := range []Action{ActionList, ActionShow, ActionCreate, ActionUpdate, ActionDelete} {
		if !CanAccess(nil, BreedResource{}, a) {
			t.Fatalf("breed %s should be open", a)
		}
	}
}
