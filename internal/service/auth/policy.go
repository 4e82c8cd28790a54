package auth

import (
	"fmt"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Policy decides whether a failed audit write fails the action that caused it.
type Policy struct {
	FatalAudit map[domain.Action]bool
}

// DefaultPolicy tolerates audit failures for every action.
func DefaultPolicy() Policy {
	return Policy{FatalAudit: map[domain.Action]bool{}}
}

// LegacyPolicy tolerates a failed SIGNUP record but fails LOGIN and LOGOUT.
func LegacyPolicy() Policy {
	return Policy{FatalAudit: map[domain.Action]bool{
		domain.ActionLogin:  true,
		domain.ActionLogout: true,
	}}
}

// PolicyFromActions builds a policy where exactly the given actions are fatal.
func PolicyFromActions(actions []domain.Action) (Policy, error) {
	p := DefaultPolicy()
	for _, a := range actions {
		if !a.IsValid() {
			return Policy{}, fmt.Errorf("auth: unknown audit action %q", a)
		}
		p.FatalAudit[a] = true
	}
	return p, nil
}

// IsFatal reports whether an audit failure for action must fail the request.
func (p Policy) IsFatal(action domain.Action) bool {
	return p.FatalAudit[action]
}
