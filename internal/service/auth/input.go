package auth

import (
	"github.com/heartmarshall/accountaudit/internal/credential"
	"github.com/heartmarshall/accountaudit/internal/domain"
)

// SignupInput holds parameters for account creation.
type SignupInput struct {
	Email    string
	Password string
	Name     *string
	Origin   string
}

// Validate checks credential hygiene. Email and password are used verbatim.
func (i SignupInput) Validate() error {
	return credential.ValidateSignup(i.Email, i.Password)
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
	Origin   string
}

// LogoutInput holds parameters for logout.
type LogoutInput struct {
	Email  string
	Origin string
}

// Validate validates the logout input.
func (i LogoutInput) Validate() error {
	if i.Email == "" {
		return domain.NewValidationError("email", "Email is required")
	}
	return nil
}
