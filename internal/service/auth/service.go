package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// accountStore defines the account persistence needed by auth service.
type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Create(ctx context.Context, a domain.NewAccount) (*domain.Account, error)
}

// auditLog defines the activity trail operations needed by auth service.
type auditLog interface {
	Append(ctx context.Context, accountID uuid.UUID, email string, action domain.Action, origin string) (domain.Activity, error)
	Query(ctx context.Context, accountID uuid.UUID, action *domain.Action) ([]domain.Activity, error)
}

// hasher defines password hashing needed by auth service.
type hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Service implements signup, login, logout and activity listing.
type Service struct {
	log      *slog.Logger
	accounts accountStore
	audit    auditLog
	hasher   hasher
	policy   Policy
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountStore,
	audit auditLog,
	hasher hasher,
	policy Policy,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		audit:    audit,
		hasher:   hasher,
		policy:   policy,
	}
}

// recordActivity appends an audit record. The error is returned only when
// the policy marks the action as fatal; otherwise it is logged and dropped.
func (s *Service) recordActivity(ctx context.Context, accountID uuid.UUID, email string, action domain.Action, origin string) error {
	if _, err := s.audit.Append(ctx, accountID, email, action, origin); err != nil {
		if s.policy.IsFatal(action) {
			return err
		}
		s.log.ErrorContext(ctx, "activity logging failed",
			slog.String("action", action.String()),
			slog.String("user_id", accountID.String()),
			slog.String("error", err.Error()))
	}
	return nil
}
