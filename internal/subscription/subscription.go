package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Mattyc1998/heartlift/internal/quota"
)

// Checker resolves a user's tier from the external subscription
// record. Looked up fresh on every request: a tier can change between
// requests (an upgrade mid-conversation takes effect immediately), so
// results are never cached here.
type Checker interface {
	TierOf(ctx context.Context, userID string) (quota.Tier, error)
}

// StaticChecker is backed by a fixed premium allowlist, typically
// seeded from the environment. Anyone not listed is free-tier.
type StaticChecker struct {
	premium map[string]bool
}

func NewStaticChecker(premiumUserIDs []string) *StaticChecker {
	m := make(map[string]bool, len(premiumUserIDs))
	for _, id := range premiumUserIDs {
		m[id] = true
	}
	return &StaticChecker{premium: m}
}

func (c *StaticChecker) TierOf(_ context.Context, userID string) (quota.Tier, error) {
	if c.premium[userID] {
		return quota.TierPremium, nil
	}
	return quota.TierFree, nil
}

// PostgresChecker reads the subscriptions table maintained by the
// billing pipeline. A user is premium while an active row exists.
type PostgresChecker struct {
	db *sql.DB
}

func NewPostgresChecker(db *sql.DB) (*PostgresChecker, error) {
	c := &PostgresChecker{db: db}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS premium_subscriptions (
		user_id TEXT PRIMARY KEY,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return nil, fmt.Errorf("subscription schema: %w", err)
	}
	return c, nil
}

func (c *PostgresChecker) TierOf(ctx context.Context, userID string) (quota.Tier, error) {
	var active bool
	err := c.db.QueryRowContext(ctx,
		`SELECT active FROM premium_subscriptions WHERE user_id = $1`, userID,
	).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return quota.TierFree, nil
	}
	if err != nil {
		return "", fmt.Errorf("subscription lookup for %s: %w", userID, err)
	}
	if active {
		return quota.TierPremium, nil
	}
	return quota.TierFree, nil
}
