package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action is the kind of account action recorded in the audit trail.
type Action string

const (
	ActionSignup Action = "SIGNUP"
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
)

func (a Action) String() string { return string(a) }

// IsValid returns true if the action is a known value.
func (a Action) IsValid() bool {
	switch a {
	case ActionSignup, ActionLogin, ActionLogout:
		return true
	}
	return false
}

// Actions lists every known action in a stable order.
func Actions() []Action {
	return []Action{ActionSignup, ActionLogin, ActionLogout}
}

// ParseAction converts s into a known Action. Matching is exact.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", NewValidationError("action", fmt.Sprintf("unknown action %q", s))
	}
	return a, nil
}

// UnknownOrigin is recorded when no client address could be determined.
const UnknownOrigin = "Unknown"

// Activity is an immutable audit record of one account action.
type Activity struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Email     string
	Action    Action
	Origin    string
	CreatedAt time.Time
}
