package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

const addressColumns = `id, user_id, street, number, district, city, state, zip_code`

type AddressRepository struct {
	db *sqlx.DB
}

func NewAddressRepository(db *sqlx.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type addressRow struct {
	ID       int64          `db:"id"`
	UserID   int64          `db:"user_id"`
	Street   string         `db:"street"`
	Number   sql.NullString `db:"number"`
	District sql.NullString `db:"district"`
	City     string         `db:"city"`
	State    string         `db:"state"`
	ZipCode  string         `db:"zip_code"`
}

func (r addressRow) toDomain() domain.Address {
	return domain.Address{
		ID:       r.ID,
		UserID:   r.UserID,
		Street:   r.Street,
		Number:   nullString(r.Number),
		District: nullString(r.District),
		City:     r.City,
		State:    r.State,
		ZipCode:  r.ZipCode,
	}
}

func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*domain.Address, error) {
	var row addressRow
	err := r.db.GetContext(ctx, &row, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	a := row.toDomain()
	return &a, nil
}

func (r *AddressRepository) FindBy(ctx context.Context, f ports.AddressFilter) ([]domain.Address, error) {
	var rows []addressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY id ASC`, f.UserID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	out := make([]domain.Address, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO addresses (user_id, street, number, district, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, a.UserID, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode).Scan(&a.ID)
	if err != nil {
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// Update rewrites every mutable column. user_id is not part of the SET list.
func (r *AddressRepository) Update(ctx context.Context, a *domain.Address) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET street = $2, number = $3, district = $4, city = $5, state = $6, zip_code = $7
		WHERE id = $1
	`, a.ID, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	if err != nil {
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("update address: %w", err)
	}
	return requireAffected(res)
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
