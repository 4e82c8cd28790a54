package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Signup creates an account and records a SIGNUP activity.
// A failed SIGNUP record does not fail the signup unless the policy says so.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	// Step 1: Validate credentials
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Fast-path duplicate check. The unique constraint decides races.
	existing, err := s.accounts.GetByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrAlreadyExists
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, &StoreError{Op: "check existing user", Message: "Error checking existing user", Err: err}
	}

	// Step 3: Hash password
	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	// Step 4: Insert account
	created, err := s.accounts.Create(ctx, domain.NewAccount{
		Email:        input.Email,
		PasswordHash: digest,
		Name:         input.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		var rejected *domain.RejectedError
		if errors.As(err, &rejected) {
			return nil, &InsertRejectedError{Detail: rejected.Detail, Err: err}
		}
		return nil, fmt.Errorf("auth.Signup create user: %w", err)
	}

	// Step 5: Record activity
	if err := s.recordActivity(ctx, created.ID, input.Email, domain.ActionSignup, input.Origin); err != nil {
		return nil, fmt.Errorf("auth.Signup log activity: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", created.ID.String()))

	return &SignupResult{AccountID: created.ID}, nil
}
