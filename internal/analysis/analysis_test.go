package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

type fakeLLM struct {
	resp string
	err  error
}

func (f *fakeLLM) Generate(_ context.Context, _ []llm.Message) (llm.Response, error) {
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.resp}, nil
}

const sampleReview = `{
  "emotionalTone": {
    "user": "anxious and seeking reassurance",
    "partner": "dismissive and short",
    "overall": "a pursue-withdraw dynamic"
  },
  "miscommunicationPatterns": [
    {"pattern": "mind reading", "description": "assuming intent without asking", "examples": ["you obviously don't care"]}
  ],
  "suggestions": [
    {"issue": "accusatory openers", "betterResponse": "I felt hurt when the plans changed", "explanation": "I-statements lower defensiveness"}
  ],
  "overallAssessment": "Workable, but the pursue-withdraw loop needs attention."
}`

func TestAnalyzeParsesReview(t *testing.T) {
	a := NewAnalyzer(&fakeLLM{resp: sampleReview}, time.Second)

	review, err := a.Analyze(context.Background(), "me: why didn't you call?\nthem: I was busy.")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if review.Fallback {
		t.Fatalf("expected parsed review, got fallback")
	}
	if review.EmotionalTone.Overall != "a pursue-withdraw dynamic" {
		t.Errorf("unexpected tone: %+v", review.EmotionalTone)
	}
	if len(review.MiscommunicationPatterns) != 1 || review.MiscommunicationPatterns[0].Pattern != "mind reading" {
		t.Errorf("unexpected patterns: %+v", review.MiscommunicationPatterns)
	}
	if len(review.Suggestions) != 1 {
		t.Errorf("unexpected suggestions: %+v", review.Suggestions)
	}
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	a := NewAnalyzer(&fakeLLM{resp: "```json\n" + sampleReview + "\n```"}, time.Second)
	review, err := a.Analyze(context.Background(), "some conversation")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if review.Fallback {
		t.Fatalf("expected parsed review despite code fences")
	}
}

func TestAnalyzeModelFailureServesFallback(t *testing.T) {
	a := NewAnalyzer(&fakeLLM{err: errors.New("upstream down")}, time.Second)
	review, err := a.Analyze(context.Background(), "some conversation")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !review.Fallback {
		t.Fatalf("expected fallback review")
	}
	if review.OverallAssessment == "" || len(review.Suggestions) == 0 {
		t.Errorf("fallback review incomplete: %+v", review)
	}
}

func TestAnalyzeGarbageOutputServesFallback(t *testing.T) {
	a := NewAnalyzer(&fakeLLM{resp: "I'm sorry, I can't analyze that."}, time.Second)
	review, err := a.Analyze(context.Background(), "some conversation")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !review.Fallback {
		t.Fatalf("expected fallback review for undecodable output")
	}
}

func TestAnalyzeValidatesInput(t *testing.T) {
	a := NewAnalyzer(&fakeLLM{resp: sampleReview}, time.Second)
	if _, err := a.Analyze(context.Background(), ""); err == nil {
		t.Errorf("expected error for empty conversation")
	}
	if _, err := a.Analyze(context.Background(), strings.Repeat("a", maxConversationLen+1)); err == nil {
		t.Errorf("expected error for oversized conversation")
	}
}
