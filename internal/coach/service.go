package coach

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Mattyc1998/heartlift/internal/history"
	"github.com/Mattyc1998/heartlift/internal/llm"
	"github.com/Mattyc1998/heartlift/internal/quota"
	"github.com/Mattyc1998/heartlift/internal/storage"
	"github.com/Mattyc1998/heartlift/internal/subscription"
)

const (
	maxMessageLen = 5000
	// History window sent to the model on each turn.
	contextWindow = 16
)

// ErrInvalidMessage rejects blank or oversized input before any other
// processing.
var ErrInvalidMessage = fmt.Errorf("message must be between 1 and %d characters", maxMessageLen)

// Reply is the outcome of one chat turn.
type Reply struct {
	Response     string       `json:"response"`
	CoachName    string       `json:"coachName"`
	Crisis       bool         `json:"isCrisisResponse,omitempty"`
	Fallback     bool         `json:"fallback,omitempty"`
	LimitReached bool         `json:"-"`
	Usage        quota.Status `json:"usage"`
}

// Service runs the coaching conversation flow. Each turn goes through
// crisis interception, then the quota gate, then the model. Crisis
// replies and quota rejections never reach the model; model failures
// degrade to a canned reply in the persona's voice.
type Service struct {
	client   llm.Client
	quota    *quota.Service
	subs     subscription.Checker
	history  *history.Manager
	recorder storage.Recorder
	timeout  time.Duration
}

func NewService(client llm.Client, q *quota.Service, subs subscription.Checker, hist *history.Manager, rec storage.Recorder, timeout time.Duration) *Service {
	return &Service{
		client:   client,
		quota:    q,
		subs:     subs,
		history:  hist,
		recorder: rec,
		timeout:  timeout,
	}
}

// Chat handles one user message. Only a failing quota store produces
// an error; every other failure mode resolves to a served Reply.
func (s *Service) Chat(ctx context.Context, userID, personaID, message string) (Reply, error) {
	message = sanitize(message)
	if message == "" || len(message) > maxMessageLen {
		return Reply{}, ErrInvalidMessage
	}

	persona := PersonaByID(personaID)

	// Crisis interception comes before everything else. The referral
	// is served immediately and does not count against the quota.
	if category, found := DetectCrisis(message); found {
		log.Printf("🚨 Crisis interception for user %s (category %s)", userID, category)
		reply := Reply{
			Response:  CrisisResponse(category),
			CoachName: persona.Name,
			Crisis:    true,
			Usage:     quota.Status{CanSend: true},
		}
		s.record(userID, persona.ID, message, reply.Response, false)
		return reply, nil
	}

	tier, err := s.subs.TierOf(ctx, userID)
	if err != nil {
		return Reply{}, fmt.Errorf("resolve tier for %s: %w", userID, err)
	}

	st, err := s.quota.Consume(ctx, userID, tier)
	if err != nil {
		return Reply{}, fmt.Errorf("consume quota for %s: %w", userID, err)
	}
	if !st.CanSend {
		return Reply{CoachName: persona.Name, LimitReached: true, Usage: st}, nil
	}

	response, degraded := s.generate(ctx, userID, persona, message)

	sessionKey := sessionKey(userID, persona.ID)
	s.history.AppendUser(sessionKey, message)
	s.history.AppendAssistant(sessionKey, response)
	s.record(userID, persona.ID, message, response, degraded)

	return Reply{
		Response:  response,
		CoachName: persona.Name,
		Fallback:  degraded,
		Usage:     st,
	}, nil
}

func (s *Service) generate(ctx context.Context, userID string, persona Persona, message string) (string, bool) {
	window := s.history.Get(sessionKey(userID, persona.ID))
	if len(window) > contextWindow {
		window = window[len(window)-contextWindow:]
	}

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{Role: "system", Content: persona.SystemPrompt})
	messages = append(messages, window...)
	messages = append(messages, llm.Message{Role: "user", Content: message})

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Generate(genCtx, messages)
	if err != nil {
		log.Printf("⚠️ Coach model call failed for user %s, serving canned reply: %v", userID, err)
		return fallbackReply(persona.ID), true
	}
	return resp.Content, false
}

func (s *Service) record(userID, personaID, message, response string, fallback bool) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.AppendEvent(storage.Event{
		UserID:       userID,
		Kind:         storage.KindChat,
		UserMessage:  message,
		CoachID:      personaID,
		ResponseText: response,
		Fallback:     fallback,
	})
	if err != nil {
		log.Printf("⚠️ Failed to record chat event: %v", err)
	}
}

func sessionKey(userID, personaID string) string {
	return userID + ":" + personaID
}

// sanitize trims the message and strips control characters that some
// clients leak into the payload.
func sanitize(message string) string {
	message = strings.TrimSpace(message)
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		if r == 0x7F {
			return -1
		}
		return r
	}, message)
}
