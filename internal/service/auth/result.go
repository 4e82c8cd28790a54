package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// SignupResult is returned by Signup.
type SignupResult struct {
	AccountID uuid.UUID
}

// LoginResult is returned by Login. Account carries the stored hash; callers
// must not serialize it.
type LoginResult struct {
	Account *domain.Account
}
