package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/petowners/petregistry/internal/core/domain"
)

const userColumns = `id, email, password, first_name, last_name, phone, roles, created_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID        int64           `db:"id"`
	Email     string          `db:"email"`
	Password  string          `db:"password"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	Phone     sql.NullString  `db:"phone"`
	Roles     domain.RoleList `db:"roles"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Roles:     r.Roles,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.Phone.Valid {
		phone := r.Phone.String
		u.Phone = &phone
	}
	return u
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return row.toDomain(), nil
}

// Create inserts the user and stores the generated id on it.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone, roles, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		user.Email,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Roles,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrEmailTaken
		}
		if pgCode(err) == codeStringTooLong {
			return domain.ErrValueTooLong
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
