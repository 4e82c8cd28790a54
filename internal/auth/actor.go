// Package auth resolves the acting account from a bearer credential.
package auth

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidCredential is returned for any credential that does not identify
// an account.
var ErrInvalidCredential = errors.New("invalid credential")

// ActorAuthenticator turns a bearer credential into the acting account ID.
type ActorAuthenticator interface {
	Authenticate(credential string) (uuid.UUID, error)
}

// PassthroughAuthenticator treats the bearer value itself as the account ID.
// It performs no verification beyond parsing.
type PassthroughAuthenticator struct{}

// Authenticate parses credential as a UUID.
func (PassthroughAuthenticator) Authenticate(credential string) (uuid.UUID, error) {
	id, err := uuid.Parse(credential)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidCredential
	}
	return id, nil
}
