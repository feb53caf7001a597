package daily

import (
	"fmt"
	"time"
)

// DateFormat is the canonical UTC calendar-day format used for every
// daily-windowed key (quiz cache entries, quota ledger rows).
const DateFormat = "2006-01-02"

// Date returns the UTC calendar day of t.
func Date(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// QuizKey builds the cache key for a generated quiz batch. Two requests
// with the same category and count on the same UTC day share one key.
func QuizKey(category string, count int, t time.Time) string {
	return fmt.Sprintf("%s:%d:%s", category, count, Date(t))
}

// QuotaKey builds the ledger key for a user's daily message counter.
func QuotaKey(userID string, t time.Time) string {
	return fmt.Sprintf("%s:%s", userID, Date(t))
}

// NextMidnight returns the first instant of the next UTC calendar day.
func NextMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}

// SecondsUntilReset returns how many whole seconds remain until the
// next UTC midnight, when every daily window rolls over.
func SecondsUntilReset(t time.Time) int {
	return int(NextMidnight(t).Sub(t.UTC()) / time.Second)
}
