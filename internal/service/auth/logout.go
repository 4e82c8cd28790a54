package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Logout records a LOGOUT activity for the account owning input.Email.
// No session state exists, so nothing else changes.
func (s *Service) Logout(ctx context.Context, input LogoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	id, err := s.accounts.GetIDByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return &StoreError{Op: "find user", Message: "Internal server error during logout", Err: err}
	}

	if err := s.recordActivity(ctx, id, input.Email, domain.ActionLogout, input.Origin); err != nil {
		return fmt.Errorf("auth.Logout log activity: %w", err)
	}
	return nil
}
