package subscription

import (
	"context"
	"testing"

	"github.com/Mattyc1998/heartlift/internal/quota"
)

func TestStaticCheckerAllowlist(t *testing.T) {
	c := NewStaticChecker([]string{"alice", "bob"})

	tier, err := c.TierOf(context.Background(), "alice")
	if err != nil {
		t.Fatalf("tier of alice: %v", err)
	}
	if tier != quota.TierPremium {
		t.Errorf("expected premium for listed user, got %s", tier)
	}

	tier, err = c.TierOf(context.Background(), "carol")
	if err != nil {
		t.Fatalf("tier of carol: %v", err)
	}
	if tier != quota.TierFree {
		t.Errorf("expected free for unlisted user, got %s", tier)
	}
}

func TestStaticCheckerEmptyList(t *testing.T) {
	c := NewStaticChecker(nil)
	tier, err := c.TierOf(context.Background(), "anyone")
	if err != nil {
		t.Fatalf("tier: %v", err)
	}
	if tier != quota.TierFree {
		t.Errorf("expected free with empty allowlist, got %s", tier)
	}
}
