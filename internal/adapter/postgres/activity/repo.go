// Package activity implements the append-only audit trail using PostgreSQL.
// It offers insert and read operations only.
package activity

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

const table = "activities"

var columns = []string{"id", "user_id", "email", "action", "ip_address", "created_at"}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	Action    string    `db:"action"`
	IPAddress string    `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Activity {
	return domain.Activity{
		ID:        r.ID,
		AccountID: r.UserID,
		Email:     r.Email,
		Action:    domain.Action(r.Action),
		Origin:    r.IPAddress,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts one activity. CreatedAt must already be set by the caller;
// the database assigns only the ID.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "email", "action", "ip_address", "created_at").
		Values(a.AccountID, a.Email, string(a.Action), a.Origin, a.CreatedAt).
		Suffix("RETURNING id, user_id, email, action, ip_address, created_at").
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build create activity: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.AccountID.String())
	}
	return dst.toDomain(), nil
}

// ListByAccount returns the account's activities newest first, optionally
// restricted to one action. The result is never nil.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID, action *domain.Action) ([]domain.Activity, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": accountID}).
		OrderBy("created_at DESC")
	if action != nil {
		b = b.Where(sq.Eq{"action": string(*action)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activities", accountID.String())
	}

	activities := make([]domain.Activity, len(rows))
	for i, rw := range rows {
		activities[i] = rw.toDomain()
	}
	return activities, nil
}
