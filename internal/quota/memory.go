package quota

import (
	"context"
	"sync"
	"time"

	"github.com/Mattyc1998/heartlift/internal/daily"
)

// MemoryStore is the process-local Store, used in tests and in
// single-instance deployments without a database. One mutex guards the
// whole map; the ledger is small (one row per active user per day).
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record), now: time.Now}
}

func (m *MemoryStore) key(userID, date string) string {
	return userID + ":" + date
}

func (m *MemoryStore) Get(_ context.Context, userID, date string) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[m.key(userID, date)]
	return rec, ok, nil
}

func (m *MemoryStore) IncrementIfBelow(_ context.Context, userID, date string, limit int) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.key(userID, date)
	rec, ok := m.records[k]
	if !ok {
		rec = Record{UserID: userID, Date: date}
	}
	if rec.MessageCount >= limit {
		return rec, false, nil
	}
	rec.MessageCount++
	rec.UpdatedAt = m.now()
	m.records[k] = rec
	return rec, true, nil
}

func (m *MemoryStore) DeleteBefore(_ context.Context, date string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for k, rec := range m.records {
		// ISO dates compare correctly as strings.
		if rec.Date < date {
			delete(m.records, k)
			deleted++
		}
	}
	return deleted, nil
}

// Seed inserts a record directly; test helper for reset-boundary cases.
func (m *MemoryStore) Seed(userID string, at time.Time, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	date := daily.Date(at)
	m.records[m.key(userID, date)] = Record{UserID: userID, Date: date, MessageCount: count, UpdatedAt: at}
}
