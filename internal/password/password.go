// Package password hashes and verifies account secrets with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// MaxLength is the number of input bytes bcrypt actually consumes.
const MaxLength = 72

// ErrTooLong is returned by Hash for input bcrypt would silently truncate.
var ErrTooLong = domain.NewValidationError("password", "Password must be at most 72 bytes long")

// Hasher produces salted bcrypt digests at a fixed cost.
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. A cost outside bcrypt's accepted range
// falls back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns a digest embedding a fresh random salt and the cost, so two
// calls with the same input yield different digests.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password.Hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is
// constant-time; a malformed or corrupt digest yields false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
