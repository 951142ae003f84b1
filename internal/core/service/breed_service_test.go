package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/petowners/petregistry/internal/core/domain"
)

func TestBreedService_OpenCatalog(t *testing.T) {
	f := newFixture(t)
	svc := f.breeds()
	ctx := context.Background()

	b, err := svc.Create(ctx, nil, body(`{"name":"Beagle","species":"dog"}`))
	if err != nil {
		t.Fatalf("anonymous create: %v", err)
	}

	if _, err := svc.Update(ctx, nil, b.ID, body(`{"name":"Harrier"}`)); err != nil {
		t.Fatalf("anonymous update: %v", err)
	}

	got, err := svc.Get(ctx, nil, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Harrier" || got.Species != "dog" {
		t.Fatalf("unexpected breed: %+v", got)
	}

	all, err := svc.List(ctx, nil)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 breed, got %v (%v)", all, err)
	}

	if err := svc.Delete(ctx, nil, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, nil, b.ID)
	assertErr(t, err, domain.ErrNotFound, "Breed not found")
}

func TestBreedService_CreateMissingFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.breeds().Create(context.Background(), nil, body(`{"name":"Beagle"}`))
	assertErr(t, err, domain.ErrBadRequest, "Missing required fields (name, species)")
}

func TestBreedService_DeleteInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.breed(t, "Beagle")

	if _, err := f.pets().Create(ctx, f.owner, body(fmt.Sprintf(`{"name":"Rex","gender":"male","breedId":%d}`, b.ID))); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	err := f.breeds().Delete(ctx, nil, b.ID)
	assertErr(t, err, domain.ErrConflict, "Breed is still referenced by pets")

	if _, err := f.breeds().Get(ctx, nil, b.ID); err != nil {
		t.Fatalf("breed must survive: %v", err)
	}
}

func TestBreedService_UpdateMissing(t *testing.T) {
	f := newFixture(t)
	_, err := f.breeds().Update(context.Background(), nil, 77, mustNotDecode{t})
	assertErr(t, err, domain.ErrNotFound, "Breed not found")
}

func TestBreedService_RejectsOverlongFields(t *testing.T) {
	f := newFixture(t)
	svc := f.breeds()
	ctx := context.Background()

	_, err := svc.Create(ctx, nil, body(fmt.Sprintf(`{"name":"Beagle","species":%q}`, strings.Repeat("s", 51))))
	assertErr(t, err, domain.ErrBadRequest, "Validation failed")
	if all, _ := f.store.Breeds().FindAll(ctx); len(all) != 0 {
		t.Fatalf("expected nothing stored, got %v", all)
	}

	b := f.breed(t, "Beagle")
	_, err = svc.Update(ctx, nil, b.ID, body(fmt.Sprintf(`{"name":%q}`, strings.Repeat("n", 101))))
	var de *domain.Error
	if !errors.As(err, &de) || de.Fields["name"] != "name must be at most 100 characters long" {
		t.Fatalf("expected name violation, got %v", err)
	}

	got, _ := svc.Get(ctx, nil, b.ID)
	if got.Name != "Beagle" {
		t.Fatalf("breed changed after rejected update: %+v", got)
	}
}
