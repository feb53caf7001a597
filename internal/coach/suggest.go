package coach

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

// Message types the suggester knows how to draft.
const (
	SuggestClosure         = "closure"
	SuggestNoContact       = "no_contact"
	SuggestBoundary        = "boundary"
	SuggestMissYouResponse = "miss_you_response"
	SuggestCustom          = "custom"
)

// Suggestion is one drafted message with its tone.
type Suggestion struct {
	Tone    string `json:"tone"`
	Message string `json:"message"`
}

// SuggestRequest describes the situation a message is needed for.
type SuggestRequest struct {
	MessageType  string `json:"messageType"`
	Relationship string `json:"relationship"`
	UserMessage  string `json:"userMessage,omitempty"`
}

// Suggester drafts boundary-setting messages. On any model failure it
// serves three canned suggestions so the endpoint never fails.
type Suggester struct {
	client  llm.Client
	timeout time.Duration
}

func NewSuggester(client llm.Client, timeout time.Duration) *Suggester {
	return &Suggester{client: client, timeout: timeout}
}

const suggestSystemPrompt = `You are a relationship communication expert. Generate messages that are emotionally mature, clear and direct but kind, focused on healthy boundaries, non-manipulative, and appropriate for the relationship context. Provide 3 different options with varying tones (gentle, neutral, firm), one per line, each prefixed with its tone and a colon.`

func suggestPrompt(req SuggestRequest) string {
	rel := req.Relationship
	if rel == "" {
		rel = "romantic"
	}
	switch req.MessageType {
	case SuggestClosure:
		return fmt.Sprintf("Generate a mature, dignified closure message for someone ending a %s relationship. The message should be respectful, clear, and provide emotional closure without blame.", rel)
	case SuggestNoContact:
		return fmt.Sprintf("Generate a polite but firm no-contact message for someone who needs boundaries with their ex-%s. Should be kind but clear about the boundary.", rel)
	case SuggestBoundary:
		return fmt.Sprintf("Generate a message that sets healthy boundaries with an ex-%s. Should be respectful but firm about limits and expectations.", rel)
	case SuggestMissYouResponse:
		return fmt.Sprintf("Generate a thoughtful response to \"I miss you\" from an ex-%s. Should acknowledge the feeling while maintaining appropriate boundaries.", rel)
	default:
		return fmt.Sprintf("Help rewrite this message to be more emotionally intelligent and effective in a %s context: %q", rel, req.UserMessage)
	}
}

var optionLine = regexp.MustCompile(`(?i)^(?:\d+\.\s*|Option \d+:\s*)?(gentle|neutral|firm|balanced)\s*[:.]\s*`)

// Suggest returns 3 drafted messages. The second return reports
// whether canned suggestions were served.
func (s *Suggester) Suggest(ctx context.Context, req SuggestRequest) ([]Suggestion, bool) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Generate(genCtx, []llm.Message{
		{Role: "system", Content: suggestSystemPrompt},
		{Role: "user", Content: suggestPrompt(req)},
	})
	if err != nil {
		log.Printf("⚠️ Suggestion model call failed, serving canned drafts: %v", err)
		return cannedSuggestions(req.MessageType), true
	}

	suggestions := parseSuggestions(resp.Content)
	if len(suggestions) == 0 {
		log.Printf("⚠️ Could not parse any suggestion from model output, serving canned drafts")
		return cannedSuggestions(req.MessageType), true
	}
	return suggestions, false
}

// parseSuggestions extracts tone-prefixed lines. When no line matches
// the expected shape the whole output becomes a single balanced
// suggestion.
func parseSuggestions(raw string) []Suggestion {
	raw = llm.StripCodeFences(raw)
	var out []Suggestion
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := optionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		msg := strings.TrimSpace(optionLine.ReplaceAllString(line, ""))
		if msg == "" {
			continue
		}
		out = append(out, Suggestion{Tone: strings.ToLower(m[1]), Message: msg})
	}
	if len(out) == 0 && strings.TrimSpace(raw) != "" {
		out = append(out, Suggestion{Tone: "balanced", Message: strings.TrimSpace(raw)})
	}
	return out
}

func cannedSuggestions(messageType string) []Suggestion {
	switch messageType {
	case SuggestNoContact:
		return []Suggestion{
			{Tone: "gentle", Message: "I need some space to heal right now, so I won't be responding to messages for a while. I hope you can understand."},
			{Tone: "neutral", Message: "I've decided to take a break from contact while I work through things. Please respect that."},
			{Tone: "firm", Message: "I'm not available for contact anymore. Please don't reach out again."},
		}
	case SuggestMissYouResponse:
		return []Suggestion{
			{Tone: "gentle", Message: "I hear you, and part of me misses what we had too. But I need to keep moving forward, and I hope you find peace as well."},
			{Tone: "neutral", Message: "Thank you for sharing that. I think it's best for both of us to keep our distance right now."},
			{Tone: "firm", Message: "I appreciate the honesty, but my answer hasn't changed. Please respect the boundary we set."},
		}
	default:
		return []Suggestion{
			{Tone: "gentle", Message: "I've been doing a lot of thinking, and I need to be honest with you about where I stand. I care about how we treat each other, and I need things to change."},
			{Tone: "neutral", Message: "I want to be clear about my boundaries going forward. I'm not comfortable with how things have been, and I need us to respect each other's limits."},
			{Tone: "firm", Message: "This isn't working for me, and I need it to stop. I'm asking you directly to respect my boundary."},
		}
	}
}
