package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an address no other test will use.
func UniqueEmail() string {
	return "testuser-" + uniqueSuffix() + "@example.com"
}

// SeedAccount inserts a user row with a placeholder hash and returns it.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	acc := domain.Account{
		Email:        UniqueEmail(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id, created_at`,
		acc.Email, acc.PasswordHash,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert user: %v", err)
	}

	return acc
}

// SeedActivity inserts an activity row for acc at the given time.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, acc domain.Account, action domain.Action, at time.Time) domain.Activity {
	t.Helper()
	ctx := context.Background()

	a := domain.Activity{
		AccountID: acc.ID,
		Email:     acc.Email,
		Action:    action,
		Origin:    "127.0.0.1",
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO activities (user_id, email, action, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.AccountID, a.Email, string(a.Action), a.Origin, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert: %v", err)
	}

	return a
}
