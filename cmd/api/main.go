package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/petowners/petregistry/internal/api"
	"github.com/petowners/petregistry/internal/core/ports"
	"github.com/petowners/petregistry/internal/core/service"
	"github.com/petowners/petregistry/internal/infrastructure/db/memory"
	"github.com/petowners/petregistry/internal/infrastructure/db/mongo"
	"github.com/petowners/petregistry/internal/infrastructure/db/postgres"
	"github.com/petowners/petregistry/internal/infrastructure/db/redis"
	"github.com/petowners/petregistry/internal/infrastructure/http/handlers"
	"github.com/petowners/petregistry/internal/infrastructure/security"
	"github.com/petowners/petregistry/internal/infrastructure/validation"
	"github.com/petowners/petregistry/internal/pkg/config"
	"github.com/petowners/petregistry/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// repositories is the store selected by STORE_DRIVER.
type repositories struct {
	users     ports.UserRepository
	addresses ports.AddressRepository
	breeds    ports.BreedRepository
	pets      ports.PetRepository
	checks    []handlers.Dependency
	close     func(context.Context)
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "petregistry",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.EphemeralSecret {
		log.Warn().Msg("JWT_SECRET is unset; signing tokens with a random per-process key")
	}

	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close(context.Background())

	breeds := repos.breeds
	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		breeds = redis.NewBreedCache(breeds, rdb, cfg.Redis.BreedTTL, log)
		repos.checks = append(repos.checks, handlers.Dependency{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.BreedTTL).Msg("breed cache enabled")
	}

	tokens := security.NewJWT(cfg.JWTSecret, cfg.TokenTTL)
	validator := validation.New()
	e := api.NewRouter(api.Deps{
		Auth: service.NewAuthService(
			repos.users,
			security.NewBcryptHasher(bcrypt.DefaultCost),
			validator,
			tokens,
			log.With().Str("component", "auth").Logger(),
		),
		Addresses: service.NewAddressService(repos.addresses, validator, log.With().Str("component", "addresses").Logger()),
		Breeds:    service.NewBreedService(breeds, validator, log.With().Str("component", "breeds").Logger()),
		Pets:      service.NewPetService(repos.pets, breeds, repos.users, validator, log.With().Str("component", "pets").Logger()),
		Tokens:    tokens,
		Readiness: repos.checks,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, MaxOpenConns: 20, MaxIdleConns: 5})
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(db.DB); err != nil {
				_ = db.Close()
				return nil, err
			}
			log.Info().Msg("postgres migrations applied")
		}
		s := postgres.NewStore(db)
		return &repositories{
			users: s.Users, addresses: s.Addresses, breeds: s.Breeds, pets: s.Pets,
			checks: []handlers.Dependency{{Name: "postgres", Check: db.PingContext}},
			close:  func(context.Context) { _ = db.Close() },
		}, nil

	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		s := mongo.NewStore(db)
		return &repositories{
			users: s.Users, addresses: s.Addresses, breeds: s.Breeds, pets: s.Pets,
			checks: []handlers.Dependency{{Name: "mongodb", Check: func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			}}},
			close: func(ctx context.Context) { _ = client.Disconnect(ctx) },
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		s := memory.NewStore()
		return &repositories{
			users: s.Users(), addresses: s.Addresses(), breeds: s.Breeds(), pets: s.Pets(),
			close: func(context.Context) {},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
