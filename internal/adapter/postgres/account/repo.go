// Package account implements the account store using PostgreSQL.
// Email uniqueness is enforced by the users_email_key constraint.
package account

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/accountaudit/internal/adapter/postgres"
	"github.com/heartmarshall/accountaudit/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password", "name", "created_at"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors the users table.
type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Name      *string   `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Account {
	return &domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.Password,
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
	}
}

// GetByEmail returns the account with exactly this email (case-sensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return dst.toDomain(), nil
}

// GetIDByEmail returns only the account ID for email.
func (r *Repo) GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("id").
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build get user id by email: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "user", email)
	}
	return id, nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by id: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return dst.toDomain(), nil
}

// Create inserts a new account. The database assigns id and created_at.
// A duplicate email surfaces as domain.ErrAlreadyExists; other data-related
// refusals surface as *domain.RejectedError.
func (r *Repo) Create(ctx context.Context, a domain.NewAccount) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("email", "password", "name").
		Values(a.Email, a.PasswordHash, a.Name).
		Suffix("RETURNING id, email, password, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", a.Email)
	}
	return dst.toDomain(), nil
}
