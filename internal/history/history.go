package history

import (
	"sync"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

// Manager keeps per-user conversation windows in memory. Each window
// holds the recent exchange with the coach so follow-up messages carry
// context. Windows are bounded: once a session exceeds maxTurns
// messages the oldest ones are dropped.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string][]llm.Message
	maxTurns int
}

func NewManager(maxTurns int) *Manager {
	if maxTurns <= 0 {
		maxTurns = 40
	}
	return &Manager{sessions: make(map[string][]llm.Message), maxTurns: maxTurns}
}

func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

func (m *Manager) AppendUser(userID, content string) {
	m.append(userID, llm.Message{Role: "user", Content: content})
}

func (m *Manager) AppendAssistant(userID, content string) {
	m.append(userID, llm.Message{Role: "assistant", Content: content})
}

func (m *Manager) append(userID string, msg llm.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := append(m.sessions[userID], msg)
	if len(msgs) > m.maxTurns {
		msgs = msgs[len(msgs)-m.maxTurns:]
	}
	m.sessions[userID] = msgs
}

// Get returns a copy of the user's window so callers can build a
// request payload without holding the lock.
func (m *Manager) Get(userID string) []llm.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.sessions[userID]
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}
