package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.App.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("app.mode must be %q or %q (got %q)", ModeDevelopment, ModeProduction, c.App.Mode)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	actions, err := ParseActions(c.Audit.FatalActionsRaw)
	if err != nil {
		return fmt.Errorf("audit.fatal_actions: %w", err)
	}
	c.Audit.FatalActions = actions

	return nil
}

func (a *AuthConfig) validate() error {
	switch a.Mode {
	case AuthModePassthrough:
	case AuthModeJWT:
		if len(a.JWTSecret) < 32 {
			return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
		}
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)", AuthModePassthrough, AuthModeJWT, a.Mode)
	}

	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	return nil
}

// ParseActions parses a comma-separated list of audit actions
// (e.g. "LOGIN,LOGOUT"). Names are case-insensitive. An empty string
// returns a nil slice.
func ParseActions(raw string) ([]domain.Action, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	actions := make([]domain.Action, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		a, err := domain.ParseAction(strings.ToUpper(p))
		if err != nil {
			return nil, fmt.Errorf("invalid action %q", p)
		}
		actions = append(actions, a)
	}

	return actions, nil
}
