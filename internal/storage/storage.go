package storage

import "time"

// Event kinds, one per user-facing operation that produces a model
// response.
const (
	KindChat         = "chat"
	KindQuiz         = "quiz"
	KindAssessment   = "assessment"
	KindSuggestion   = "suggestion"
	KindConversation = "conversation_analysis"
)

// Event is a single recorded interaction. Events are appended in
// chronological order; Fallback marks responses served from canned
// content after a model failure.
type Event struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"user_id"`
	Kind         string    `json:"kind"`
	UserMessage  string    `json:"user_message,omitempty"`
	CoachID      string    `json:"coach_id,omitempty"`
	ResponseText string    `json:"response_text,omitempty"`
	Fallback     bool      `json:"fallback,omitempty"`
}

// Recorder abstracts persistence of interaction events.
// Implementations must be safe for concurrent use and LoadEvents must
// return events in chronological order.
type Recorder interface {
	AppendEvent(event Event) error
	LoadEvents() ([]Event, error)
}
