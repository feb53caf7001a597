package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Mattyc1998/heartlift/internal/storage"
)

// DailyStats aggregates transcript events for one UTC day.
type DailyStats struct {
	Date          string               `json:"date"`
	TotalEvents   int                  `json:"total_events"`
	UniqueUsers   int                  `json:"unique_users"`
	FallbackCount int                  `json:"fallback_count"`
	ByKind        map[string]int       `json:"by_kind"`
	UserStats     map[string]UserStats `json:"user_stats"`
}

type UserStats struct {
	UserID   string         `json:"user_id"`
	Events   int            `json:"events"`
	ByKind   map[string]int `json:"by_kind"`
	Coaches  map[string]int `json:"coaches,omitempty"`
	Fallback int            `json:"fallback,omitempty"`
}

// AnalyzeDailyEvents folds the event log down to per-day counters.
// The day boundary follows targetDate's location.
func AnalyzeDailyEvents(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:      startOfDay.Format("2006-01-02"),
		ByKind:    make(map[string]int),
		UserStats: make(map[string]UserStats),
	}

	uniqueUsers := make(map[string]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}

		stats.TotalEvents++
		stats.ByKind[event.Kind]++
		uniqueUsers[event.UserID] = true
		if event.Fallback {
			stats.FallbackCount++
		}

		userStat, exists := stats.UserStats[event.UserID]
		if !exists {
			userStat = UserStats{
				UserID:  event.UserID,
				ByKind:  make(map[string]int),
				Coaches: make(map[string]int),
			}
		}
		userStat.Events++
		userStat.ByKind[event.Kind]++
		if event.CoachID != "" {
			userStat.Coaches[event.CoachID]++
		}
		if event.Fallback {
			userStat.Fallback++
		}
		stats.UserStats[event.UserID] = userStat
	}

	stats.UniqueUsers = len(uniqueUsers)
	return stats
}

// Summary renders a plain-text digest suitable for logs or an ops
// report.
func (ds *DailyStats) Summary() string {
	summary := fmt.Sprintf(`Usage for %s:

Overall activity:
- Total events: %d
- Unique users: %d
- Fallback responses: %d

`, ds.Date, ds.TotalEvents, ds.UniqueUsers, ds.FallbackCount)

	if len(ds.ByKind) > 0 {
		summary += "Events by kind:\n"
		kinds := make([]string, 0, len(ds.ByKind))
		for kind := range ds.ByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			summary += fmt.Sprintf("- %s: %d\n", kind, ds.ByKind[kind])
		}
		summary += "\n"
	}

	summary += fmt.Sprintf("User activity (%d users):\n", len(ds.UserStats))
	userIDs := make([]string, 0, len(ds.UserStats))
	for userID := range ds.UserStats {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)
	for _, userID := range userIDs {
		userStat := ds.UserStats[userID]
		summary += fmt.Sprintf("- User %s: %d events", userID, userStat.Events)
		if userStat.Fallback > 0 {
			summary += fmt.Sprintf(", %d fallbacks", userStat.Fallback)
		}
		summary += "\n"
	}

	return summary
}

// ToJSON serializes the stats for detailed inspection.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
