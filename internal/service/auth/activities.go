package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Activities returns the actor's audit records newest first, optionally
// restricted to one action. The actor must name an existing account.
func (s *Service) Activities(ctx context.Context, actorID uuid.UUID, action *domain.Action) ([]domain.Activity, error) {
	if action != nil && !action.IsValid() {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", *action))
	}

	if _, err := s.accounts.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, &StoreError{Op: "find actor", Message: "Failed to fetch activities", Err: err}
	}

	records, err := s.audit.Query(ctx, actorID, action)
	if err != nil {
		return nil, &StoreError{Op: "query activities", Message: "Failed to fetch activities", Err: err}
	}
	return records, nil
}
