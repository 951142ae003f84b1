package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/petowners/petregistry/internal/core/domain"
)

type BreedRepository struct {
	db *sqlx.DB
}

func NewBreedRepository(db *sqlx.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

type breedRow struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Species string `db:"species"`
}

func (r *BreedRepository) FindByID(ctx context.Context, id int64) (*domain.Breed, error) {
	var row breedRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, name, species FROM breeds WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find breed: %w", err)
	}
	return &domain.Breed{ID: row.ID, Name: row.Name, Species: row.Species}, nil
}

func (r *BreedRepository) FindAll(ctx context.Context) ([]domain.Breed, error) {
	var rows []breedRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, species FROM breeds ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}

	out := make([]domain.Breed, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Breed{ID: row.ID, Name: row.Name, Species: row.Species})
	}
	return out, nil
}

func (r *BreedRepository) Create(ctx context.Context, b *domain.Breed) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO breeds (name, species) VALUES ($1, $2) RETURNING id`, b.Name, b.Species,
	).Scan(&b.ID)
	if err != nil {
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("insert breed: %w", err)
	}
	return nil
}

func (r *BreedRepository) Update(ctx context.Context, b *domain.Breed) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE breeds SET name = $2, species = $3 WHERE id = $1`, b.ID, b.Name, b.Species)
	if err != nil {
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("update breed: %w", err)
	}
	return requireAffected(res)
}

// Delete maps the pets.breed_id foreign key failure to domain.ErrBreedInUse.
func (r *BreedRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrBreedInUse
		}
		return fmt.Errorf("delete breed: %w", err)
	}
	return requireAffected(res)
}
