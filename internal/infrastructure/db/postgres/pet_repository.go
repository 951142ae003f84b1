package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

const petColumns = `id, breed_id, owner_id, name, gender, birth_date`

type PetRepository struct {
	db *sqlx.DB
}

func NewPetRepository(db *sqlx.DB) *PetRepository {
	return &PetRepository{db: db}
}

type petRow struct {
	ID        int64        `db:"id"`
	BreedID   int64        `db:"breed_id"`
	OwnerID   int64        `db:"owner_id"`
	Name      string       `db:"name"`
	Gender    string       `db:"gender"`
	BirthDate sql.NullTime `db:"birth_date"`
}

func (r petRow) toDomain() domain.Pet {
	p := domain.Pet{
		ID:      r.ID,
		BreedID: r.BreedID,
		OwnerID: r.OwnerID,
		Name:    r.Name,
		Gender:  r.Gender,
	}
	if r.BirthDate.Valid {
		// DATE comes back as midnight; keep it in UTC so formatting is stable.
		d := r.BirthDate.Time.UTC()
		p.BirthDate = &d
	}
	return p
}

func (r *PetRepository) FindByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var row petRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	p := row.toDomain()
	return &p, nil
}

func (r *PetRepository) FindBy(ctx context.Context, f ports.PetFilter) ([]domain.Pet, error) {
	var (
		where []string
		args  []any
	)
	if f.OwnerID != 0 {
		args = append(args, f.OwnerID)
		where = append(where, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if f.BreedID != 0 {
		args = append(args, f.BreedID)
		where = append(where, fmt.Sprintf("breed_id = $%d", len(args)))
	}

	query := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id ASC`

	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	out := make([]domain.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO pets (breed_id, owner_id, name, gender, birth_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.BreedID, p.OwnerID, p.Name, p.Gender, toNullDate(p)).Scan(&p.ID)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrBreedReference
		}
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns. owner_id is never part of the SET list.
func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET breed_id = $2, name = $3, gender = $4, birth_date = $5
		WHERE id = $1
	`, p.ID, p.BreedID, p.Name, p.Gender, toNullDate(p))
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrBreedReference
		}
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("update pet: %w", err)
	}
	return requireAffected(res)
}

func (r *PetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return requireAffected(res)
}

func toNullDate(p *domain.Pet) sql.NullTime {
	if p.BirthDate == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p.BirthDate, Valid: true}
}
