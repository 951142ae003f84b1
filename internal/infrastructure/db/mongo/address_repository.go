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

type AddressRepository struct {
	col *mongo.Collection
	seq *counters
}

func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Address
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}

func (r *AddressRepository) FindBy(ctx context.Context, f ports.AddressFilter) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": f.UserID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	out := []domain.Address{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	return out, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionAddresses)
	if err != nil {
		return err
	}

	doc := *a
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	a.ID = id
	return nil
}

// Update replaces the mutable fields; user_id is left untouched.
func (r *AddressRepository) Update(ctx context.Context, a *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": bson.M{
		"street":   a.Street,
		"number":   a.Number,
		"district": a.District,
		"city":     a.City,
		"state":    a.State,
		"zip_code": a.ZipCode,
	}})
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.col, id, "address")
}

func deleteByID(ctx context.Context, col *mongo.Collection, id int64, what string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", what, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
