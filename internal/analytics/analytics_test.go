package analytics

import (
	"testing"
	"time"

	"github.com/Mattyc1998/heartlift/internal/storage"
)

func TestAnalyzeDailyEvents(t *testing.T) {
	testDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	events := []storage.Event{
		{
			Timestamp:    testDate.Add(2 * time.Hour),
			UserID:       "u1",
			Kind:         storage.KindChat,
			UserMessage:  "I keep replaying our last argument",
			CoachID:      "maya",
			ResponseText: "Let's slow that down together.",
		},
		{
			Timestamp: testDate.Add(4 * time.Hour),
			UserID:    "u1",
			Kind:      storage.KindQuiz,
			Fallback:  true,
		},
		{
			Timestamp: testDate.Add(6 * time.Hour),
			UserID:    "u2",
			Kind:      storage.KindAssessment,
		},
		// Next day, must not be counted.
		{
			Timestamp: testDate.AddDate(0, 0, 1),
			UserID:    "u3",
			Kind:      storage.KindChat,
		},
		// Previous day, must not be counted.
		{
			Timestamp: testDate.Add(-time.Hour),
			UserID:    "u4",
			Kind:      storage.KindChat,
		},
	}

	stats := AnalyzeDailyEvents(events, testDate)

	if stats.Date != "2025-06-10" {
		t.Errorf("expected date '2025-06-10', got %q", stats.Date)
	}
	if stats.TotalEvents != 3 {
		t.Errorf("expected 3 events, got %d", stats.TotalEvents)
	}
	if stats.UniqueUsers != 2 {
		t.Errorf("expected 2 unique users, got %d", stats.UniqueUsers)
	}
	if stats.FallbackCount != 1 {
		t.Errorf("expected 1 fallback, got %d", stats.FallbackCount)
	}
	if got := stats.ByKind[storage.KindChat]; got != 1 {
		t.Errorf("expected 1 chat event, got %d", got)
	}

	u1, ok := stats.UserStats["u1"]
	if !ok {
		t.Fatalf("expected stats for u1")
	}
	if u1.Events != 2 {
		t.Errorf("expected 2 events for u1, got %d", u1.Events)
	}
	if u1.Coaches["maya"] != 1 {
		t.Errorf("expected 1 maya session for u1, got %d", u1.Coaches["maya"])
	}
	if u1.Fallback != 1 {
		t.Errorf("expected 1 fallback for u1, got %d", u1.Fallback)
	}
}

func TestAnalyzeDailyEventsEmpty(t *testing.T) {
	stats := AnalyzeDailyEvents(nil, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	if stats.TotalEvents != 0 || stats.UniqueUsers != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func TestSummaryAndJSON(t *testing.T) {
	testDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	events := []storage.Event{
		{Timestamp: testDate.Add(time.Hour), UserID: "u1", Kind: storage.KindChat},
	}
	stats := AnalyzeDailyEvents(events, testDate)

	summary := stats.Summary()
	if summary == "" {
		t.Fatalf("expected non-empty summary")
	}

	out, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if out == "" {
		t.Errorf("expected non-empty json")
	}
}
