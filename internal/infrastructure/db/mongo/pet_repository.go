package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type PetRepository struct {
	col    *mongo.Collection
	breeds *mongo.Collection
	seq    *counters
}

func (r *PetRepository) FindByID(ctx context.Context, id int64) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Pet
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	normalizeDate(&p)
	return &p, nil
}

func (r *PetRepository) FindBy(ctx context.Context, f ports.PetFilter) ([]domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.OwnerID != 0 {
		filter["owner_id"] = f.OwnerID
	}
	if f.BreedID != 0 {
		filter["breed_id"] = f.BreedID
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	out := []domain.Pet{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode pets: %w", err)
	}
	for i := range out {
		normalizeDate(&out[i])
	}
	return out, nil
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireBreed(ctx, p.BreedID); err != nil {
		return err
	}

	id, err := r.seq.next(ctx, collectionPets)
	if err != nil {
		return err
	}

	doc := *p
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	p.ID = id
	return nil
}

// Update replaces the mutable fields; owner_id is left untouched.
func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.requireBreed(ctx, p.BreedID); err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":       p.Name,
		"gender":     p.Gender,
		"birth_date": p.BirthDate,
		"breed_id":   p.BreedID,
	}})
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.col, id, "pet")
}

func (r *PetRepository) requireBreed(ctx context.Context, breedID int64) error {
	n, err := r.breeds.CountDocuments(ctx, bson.M{"_id": breedID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("check breed: %w", err)
	}
	if n == 0 {
		return domain.ErrBreedReference
	}
	return nil
}

func normalizeDate(p *domain.Pet) {
	if p.BirthDate != nil {
		d := p.BirthDate.UTC()
		p.BirthDate = &d
	}
}
