package daily

import (
	"testing"
	"time"
)

func TestDateUsesUTC(t *testing.T) {
	// 23:30 in UTC+3 is 20:30 UTC the same day; 01:30 in UTC+3 is the
	// previous UTC day.
	loc := time.FixedZone("UTC+3", 3*3600)
	if got := Date(time.Date(2025, 6, 10, 23, 30, 0, 0, loc)); got != "2025-06-10" {
		t.Fatalf("unexpected date: %s", got)
	}
	if got := Date(time.Date(2025, 6, 10, 1, 30, 0, 0, loc)); got != "2025-06-09" {
		t.Fatalf("unexpected date: %s", got)
	}
}

func TestQuizKey(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	if got := QuizKey("attachment_style", 10, at); got != "attachment_style:10:2025-06-10" {
		t.Fatalf("unexpected quiz key: %s", got)
	}
}

func TestQuotaKey(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	if got := QuotaKey("u1", at); got != "u1:2025-06-10" {
		t.Fatalf("unexpected quota key: %s", got)
	}
}

func TestSecondsUntilReset(t *testing.T) {
	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 86400},
		{time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), 1},
		{time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), 43200},
	}
	for _, c := range cases {
		if got := SecondsUntilReset(c.at); got != c.want {
			t.Fatalf("SecondsUntilReset(%v)=%d, want %d", c.at, got, c.want)
		}
	}
}

func TestSecondsUntilResetStrictlyDecreasesWithinDay(t *testing.T) {
	a := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)
	if SecondsUntilReset(b) >= SecondsUntilReset(a) {
		t.Fatalf("reset countdown did not decrease")
	}
	// Immediately after midnight the countdown snaps back to a full day.
	afterMidnight := time.Date(2025, 6, 11, 0, 0, 1, 0, time.UTC)
	if got := SecondsUntilReset(afterMidnight); got != 86399 {
		t.Fatalf("countdown after midnight = %d, want 86399", got)
	}
}
