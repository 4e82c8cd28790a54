package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Login verifies email and password and records a LOGIN activity.
// An unknown email yields domain.ErrNotFound and a wrong password
// domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	// Step 1: Find user by email
	account, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "login lookup failed", slog.String("error", err.Error()))
		}
		return nil, domain.ErrNotFound
	}

	// Step 2: Verify password
	if !s.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Record activity
	if err := s.recordActivity(ctx, account.ID, account.Email, domain.ActionLogin, input.Origin); err != nil {
		return nil, fmt.Errorf("auth.Login log activity: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", account.ID.String()))

	return &LoginResult{Account: account}, nil
}
