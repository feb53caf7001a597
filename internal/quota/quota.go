package quota

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mattyc1998/heartlift/internal/daily"
)

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Unlimited is the sentinel Remaining value reported for premium users.
const Unlimited = -1

// Record is one ledger row: the admitted-message count for a user on
// one UTC calendar day. Never decremented; deleted by retention sweeps.
type Record struct {
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Status is the caller-facing view of a user's daily allowance.
type Status struct {
	Count             int  `json:"count"`
	CanSend           bool `json:"can_send"`
	Remaining         int  `json:"remaining"`
	SecondsUntilReset int  `json:"seconds_until_reset,omitempty"`
}

// Store is the durable ledger boundary. IncrementIfBelow is the
// authoritative gate: it must atomically read-or-create the row for
// (userID, date) and increment it only while the count is below limit,
// reporting whether the message was admitted. Two concurrent callers
// must never both observe 9 and both get admitted past 10.
type Store interface {
	Get(ctx context.Context, userID, date string) (Record, bool, error)
	IncrementIfBelow(ctx context.Context, userID, date string, limit int) (Record, bool, error)
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

// Service enforces the per-user daily message quota with the premium
// tier override. Store failures propagate: quota correctness cannot be
// guaranteed without the ledger, so callers treat them as retryable
// server errors.
type Service struct {
	store         Store
	limit         int
	retentionDays int
	now           func() time.Time
}

func NewService(store Store, limit, retentionDays int) *Service {
	return &Service{store: store, limit: limit, retentionDays: retentionDays, now: time.Now}
}

// Check reports the user's allowance without consuming any of it. The
// result is advisory (it lets a client disable its send button ahead
// of time); Consume remains the authoritative gate, so the classic
// check-then-act race is closed at the point of use, not here.
func (s *Service) Check(ctx context.Context, userID string, tier Tier) (Status, error) {
	if tier == TierPremium {
		return Status{CanSend: true, Remaining: Unlimited}, nil
	}

	now := s.now()
	rec, ok, err := s.store.Get(ctx, userID, daily.Date(now))
	if err != nil {
		return Status{}, fmt.Errorf("quota check for %s: %w", userID, err)
	}
	count := 0
	if ok {
		count = rec.MessageCount
	}
	return s.status(count, now), nil
}

// Consume atomically admits one message, incrementing today's counter,
// unless the user is already at the limit. Premium users are admitted
// without touching the ledger.
func (s *Service) Consume(ctx context.Context, userID string, tier Tier) (Status, error) {
	if tier == TierPremium {
		return Status{CanSend: true, Remaining: Unlimited}, nil
	}

	now := s.now()
	rec, admitted, err := s.store.IncrementIfBelow(ctx, userID, daily.Date(now), s.limit)
	if err != nil {
		return Status{}, fmt.Errorf("quota consume for %s: %w", userID, err)
	}
	st := s.status(rec.MessageCount, now)
	if !admitted {
		st.CanSend = false
	}
	return st, nil
}

func (s *Service) status(count int, now time.Time) Status {
	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Count:             count,
		CanSend:           count < s.limit,
		Remaining:         remaining,
		SecondsUntilReset: daily.SecondsUntilReset(now),
	}
}

// Sweep deletes ledger rows older than the retention horizon and
// returns how many were removed. Idempotent.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	cutoff := daily.Date(s.now().AddDate(0, 0, -s.retentionDays))
	deleted, err := s.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("retention sweep before %s: %w", cutoff, err)
	}
	return deleted, nil
}

// SweepAsync runs a best-effort sweep in the background. Safe to call
// opportunistically on quota paths; failures are logged, never
// surfaced, and never block the request that triggered the sweep.
func (s *Service) SweepAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if n, err := s.Sweep(ctx); err != nil {
			log.Printf("opportunistic quota sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("quota sweep removed %d expired rows", n)
		}
	}()
}
