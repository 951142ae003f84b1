// Package mongo implements the repositories on MongoDB. Documents keep
// integer ids drawn from a counters collection so the HTTP surface is the
// same as with the SQL store.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second

	collectionUsers     = "users"
	collectionAddresses = "addresses"
	collectionBreeds    = "breeds"
	collectionPets      = "pets"
	collectionCounters  = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Store bundles the repositories sharing one database handle.
type Store struct {
	Users     *UserRepository
	Addresses *AddressRepository
	Breeds    *BreedRepository
	Pets      *PetRepository
}

func NewStore(db *mongo.Database) *Store {
	seq := newCounters(db)
	return &Store{
		Users:     &UserRepository{col: db.Collection(collectionUsers), seq: seq},
		Addresses: &AddressRepository{col: db.Collection(collectionAddresses), seq: seq},
		Breeds:    &BreedRepository{col: db.Collection(collectionBreeds), pets: db.Collection(collectionPets), seq: seq},
		Pets:      &PetRepository{col: db.Collection(collectionPets), breeds: db.Collection(collectionBreeds), seq: seq},
	}
}

// emailCollation makes email comparisons case-insensitive.
var emailCollation = &options.Collation{Locale: "en", Strength: 2}

// EnsureIndexes creates the indexes the repositories rely on, including the
// case-insensitive unique index on users.email.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		collectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(emailCollation),
			},
		},
		collectionAddresses: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		collectionPets: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
			{Keys: bson.D{{Key: "breed_id", Value: 1}}},
		},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}
