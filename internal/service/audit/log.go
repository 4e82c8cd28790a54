// Package audit records account actions in the append-only activity trail
// and reads them back for an account.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// ErrWrite matches every error returned by Log.Append.
var ErrWrite = errors.New("audit write failed")

// WriteError reports a failed append. It is never retried here; callers
// decide whether the failure is fatal.
type WriteError struct {
	Action domain.Action
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("audit: write %s: %v", e.Action, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }

// store defines the activity persistence needed by Log.
type store interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, action *domain.Action) ([]domain.Activity, error)
}

// Log is the audit trail. Timestamps come from its own clock, never from
// the client.
type Log struct {
	store store
	now   func() time.Time
}

// NewLog creates a Log over store using the wall clock.
func NewLog(s store) *Log {
	return &Log{store: s, now: time.Now}
}

// WithClock returns a copy of l that stamps records with now.
func (l *Log) WithClock(now func() time.Time) *Log {
	cp := *l
	cp.now = now
	return &cp
}

// Append writes one immutable record.
func (l *Log) Append(ctx context.Context, accountID uuid.UUID, email string, action domain.Action, origin string) (domain.Activity, error) {
	if !action.IsValid() {
		return domain.Activity{}, &WriteError{Action: action, Err: fmt.Errorf("unknown action %q", action)}
	}
	if origin == "" {
		origin = domain.UnknownOrigin
	}

	rec, err := l.store.Create(ctx, domain.Activity{
		AccountID: accountID,
		Email:     email,
		Action:    action,
		Origin:    origin,
		CreatedAt: l.now().UTC(),
	})
	if err != nil {
		return domain.Activity{}, &WriteError{Action: action, Err: err}
	}
	return rec, nil
}

// Query returns the account's records newest first, restricted to action
// when it is non-nil. An account without records yields an empty slice.
func (l *Log) Query(ctx context.Context, accountID uuid.UUID, action *domain.Action) ([]domain.Activity, error) {
	records, err := l.store.ListByAccount(ctx, accountID, action)
	if err != nil {
		return nil, fmt.Errorf("audit.Query: %w", err)
	}
	if records == nil {
		records = []domain.Activity{}
	}
	return records, nil
}
