package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petowners/petregistry/internal/core/domain"
)

type BreedRepository struct {
	col  *mongo.Collection
	pets *mongo.Collection
	seq  *counters
}

func (r *BreedRepository) FindByID(ctx context.Context, id int64) (*domain.Breed, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Breed
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find breed: %w", err)
	}
	return &b, nil
}

func (r *BreedRepository) FindAll(ctx context.Context) ([]domain.Breed, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}

	out := []domain.Breed{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode breeds: %w", err)
	}
	return out, nil
}

func (r *BreedRepository) Create(ctx context.Context, b *domain.Breed) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionBreeds)
	if err != nil {
		return err
	}

	doc := *b
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert breed: %w", err)
	}
	b.ID = id
	return nil
}

func (r *BreedRepository) Update(ctx context.Context, b *domain.Breed) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": bson.M{
		"name":    b.Name,
		"species": b.Species,
	}})
	if err != nil {
		return fmt.Errorf("update breed: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete refuses to remove a breed that pets still reference. MongoDB has no
// foreign keys, so the check is a count ahead of the delete.
func (r *BreedRepository) Delete(ctx context.Context, id int64) error {
	countCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	n, err := r.pets.CountDocuments(countCtx, bson.M{"breed_id": id}, options.Count().SetLimit(1))
	cancel()
	if err != nil {
		return fmt.Errorf("count pets by breed: %w", err)
	}
	if n > 0 {
		return domain.ErrBreedInUse
	}
	return deleteByID(ctx, r.col, id, "breed")
}
