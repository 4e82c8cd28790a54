// Package credential implements the stateless checks applied to raw signup
// input before any store access.
package credential

import (
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// MinPasswordLength is the only strength rule: no character classes are required.
const MinPasswordLength = 8

// Reason classifies a rejected credential.
type Reason string

const (
	ReasonMissingField       Reason = "MISSING_FIELD"
	ReasonInvalidEmailFormat Reason = "INVALID_EMAIL_FORMAT"
	ReasonWeakPassword       Reason = "WEAK_PASSWORD"
)

// Error reports why signup input was rejected. It matches domain.ErrValidation.
type Error struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *Error) Error() string { return "credential: " + e.Message }

func (e *Error) Unwrap() error { return domain.ErrValidation }

// ValidateSignup checks email and password in order: presence, email
// grammar, password length. The email is not normalized; uniqueness is
// case-sensitive and left to the store.
func ValidateSignup(email, password string) error {
	if email == "" || password == "" {
		field := "email"
		if email != "" {
			field = "password"
		}
		return &Error{
			Reason:  ReasonMissingField,
			Field:   field,
			Message: "Email and password are required",
		}
	}

	if err := validation.Validate(email, is.Email); err != nil {
		return &Error{
			Reason:  ReasonInvalidEmailFormat,
			Field:   "email",
			Message: "Invalid email format",
		}
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &Error{
			Reason:  ReasonWeakPassword,
			Field:   "password",
			Message: "Password must be at least 8 characters long",
		}
	}

	return nil
}
