package service

import (
	"context"
	"errors"
	"testing"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

func TestAddressService_CreateMissingFieldsStoresNothing(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	_, err := svc.Create(ctx, f.owner, body(`{"street":"Main","city":"Lisbon","state":""}`))
	assertErr(t, err, domain.ErrBadRequest, "Missing required fields (street, city, state, zipCode)")

	got, err := f.store.Addresses().FindBy(ctx, ports.AddressFilter{UserID: f.owner.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(got))
	}
}

func TestAddressService_RoundTrip(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	created, err := svc.Create(ctx, f.owner, body(`{"street":"Main","number":"10","district":"Centro","city":"Lisbon","state":"LX","zipCode":"1000"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, f.owner, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Street != "Main" || *got.Number != "10" || *got.District != "Centro" ||
		got.City != "Lisbon" || got.State != "LX" || got.ZipCode != "1000" || got.UserID != f.owner.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAddressService_NonOwnerSeesNotFound(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	a, err := svc.Create(ctx, f.owner, body(`{"street":"Main","city":"Lisbon","state":"LX","zipCode":"1000"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Get(ctx, f.other, a.ID)
	assertErr(t, err, domain.ErrNotFound, "Address not found or forbidden")

	_, err = svc.Update(ctx, f.other, a.ID, mustNotDecode{t})
	assertErr(t, err, domain.ErrNotFound, "Address not found or forbidden")

	err = svc.Delete(ctx, f.other, a.ID)
	assertErr(t, err, domain.ErrNotFound, "Address not found or forbidden")

	// Admins get no override on addresses.
	_, err = svc.Get(ctx, f.admin, a.ID)
	assertErr(t, err, domain.ErrNotFound, "")

	if _, err := svc.Get(ctx, f.owner, a.ID); err != nil {
		t.Fatalf("owner must still see the address: %v", err)
	}
}

func TestAddressService_AnonymousIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	_, err := svc.List(ctx, nil)
	assertErr(t, err, domain.ErrUnauthorized, "Unauthorized")

	_, err = svc.Create(ctx, nil, mustNotDecode{t})
	assertErr(t, err, domain.ErrUnauthorized, "")

	_, err = svc.Update(ctx, nil, 1, mustNotDecode{t})
	assertErr(t, err, domain.ErrUnauthorized, "")
}

func TestAddressService_PatchChangesOnlyPresentFields(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	a, err := svc.Create(ctx, f.owner, body(`{"street":"Main","number":"10","city":"Lisbon","state":"LX","zipCode":"1000"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, f.owner, a.ID, body(`{"city":"X"}`)); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, f.owner, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.City != "X" {
		t.Fatalf("expected city X, got %q", got.City)
	}
	if got.Street != "Main" || got.State != "LX" || got.ZipCode != "1000" || got.Number == nil || *got.Number != "10" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestAddressService_UpdateNullClearsOptionalOnly(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	a, err := svc.Create(ctx, f.owner, body(`{"street":"Main","number":"10","city":"Lisbon","state":"LX","zipCode":"1000"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, f.owner, a.ID, body(`{"number":null,"street":null}`)); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := svc.Get(ctx, f.owner, a.ID)
	if got.Number != nil {
		t.Fatalf("expected number cleared, got %q", *got.Number)
	}
	if got.Street != "Main" {
		t.Fatalf("required street must survive null, got %q", got.Street)
	}
}

func TestAddressService_UpdateOrder(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	// Missing item reports 404 before the body is looked at.
	_, err := svc.Update(ctx, f.owner, 999, mustNotDecode{t})
	assertErr(t, err, domain.ErrNotFound, "Address not found or forbidden")

	a, _ := svc.Create(ctx, f.owner, body(`{"street":"Main","city":"Lisbon","state":"LX","zipCode":"1000"}`))
	_, err = svc.Update(ctx, f.owner, a.ID, body(`{}`))
	assertErr(t, err, domain.ErrBadRequest, "Invalid JSON")
}

func TestAddressService_ListIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	for _, p := range []*domain.Principal{f.owner, f.owner, f.other} {
		if _, err := svc.Create(ctx, p, body(`{"street":"S","city":"C","state":"ST","zipCode":"Z"}`)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := svc.List(ctx, f.owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID >= got[1].ID {
		t.Fatalf("expected 2 addresses ordered by id, got %+v", got)
	}

	if err := svc.Delete(ctx, f.owner, got[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if left, _ := svc.List(ctx, f.owner); len(left) != 1 {
		t.Fatalf("expected 1 address after delete, got %d", len(left))
	}
}

func TestAddressService_RejectsOverlongFields(t *testing.T) {
	f := newFixture(t)
	svc := f.addresses()
	ctx := context.Background()

	_, err := svc.Create(ctx, f.owner, body(`{"street":"Main","city":"Lisbon","state":"LX","zipCode":"1000-001-1000-001-1000"}`))
	var de *domain.Error
	if !errors.As(err, &de) || de.Fields["zipCode"] != "zipCode must be at most 20 characters long" {
		t.Fatalf("expected zipCode violation, got %v", err)
	}

	a, err := svc.Create(ctx, f.owner, body(`{"street":"Main","city":"Lisbon","state":"LX","zipCode":"1000-001"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Update(ctx, f.owner, a.ID, body(`{"number":"123456789012345678901","district":null}`))
	if !errors.As(err, &de) || de.Fields["number"] == "" || de.Fields["district"] != "" {
		t.Fatalf("expected only a number violation, got %v", err)
	}
}
