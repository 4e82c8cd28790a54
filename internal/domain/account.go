package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Rows are created on signup and never
// modified afterwards.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
}

// NewAccount holds the fields supplied when inserting an account.
// The store assigns ID and CreatedAt.
type NewAccount struct {
	Email        string
	PasswordHash string
	Name         *string
}
