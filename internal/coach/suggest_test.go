package coach

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSuggestParsesTonedOptions(t *testing.T) {
	fake := &fakeLLM{resp: `Gentle: I need some time to myself right now, and I hope you can understand that.
Neutral: I've decided to step back from contact while I heal.
Firm: Do not contact me again. I need this boundary respected.`}
	s := NewSuggester(fake, time.Second)

	suggestions, degraded := s.Suggest(context.Background(), SuggestRequest{MessageType: SuggestNoContact, Relationship: "partner"})
	if degraded {
		t.Fatalf("expected parsed suggestions, got canned")
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(suggestions))
	}
	wantTones := []string{"gentle", "neutral", "firm"}
	for i, want := range wantTones {
		if suggestions[i].Tone != want {
			t.Errorf("suggestion %d tone = %q, want %q", i, suggestions[i].Tone, want)
		}
		if suggestions[i].Message == "" {
			t.Errorf("suggestion %d has empty message", i)
		}
	}
}

func TestSuggestNumberedOptions(t *testing.T) {
	fake := &fakeLLM{resp: `1. Gentle: Take care of yourself, I mean that.
2. Firm: This is my final message.`}
	s := NewSuggester(fake, time.Second)

	suggestions, degraded := s.Suggest(context.Background(), SuggestRequest{MessageType: SuggestClosure})
	if degraded {
		t.Fatalf("expected parsed suggestions")
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Message != "Take care of yourself, I mean that." {
		t.Errorf("prefix not stripped: %q", suggestions[0].Message)
	}
}

func TestSuggestUnstructuredOutputBecomesBalanced(t *testing.T) {
	fake := &fakeLLM{resp: "Here is one message you could send that covers everything."}
	s := NewSuggester(fake, time.Second)

	suggestions, degraded := s.Suggest(context.Background(), SuggestRequest{MessageType: SuggestBoundary})
	if degraded {
		t.Fatalf("expected parsed suggestions")
	}
	if len(suggestions) != 1 || suggestions[0].Tone != "balanced" {
		t.Fatalf("expected single balanced suggestion, got %+v", suggestions)
	}
}

func TestSuggestModelFailureServesCanned(t *testing.T) {
	fake := &fakeLLM{err: errors.New("upstream down")}
	s := NewSuggester(fake, time.Second)

	suggestions, degraded := s.Suggest(context.Background(), SuggestRequest{MessageType: SuggestNoContact})
	if !degraded {
		t.Fatalf("expected canned suggestions")
	}
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 canned suggestions, got %d", len(suggestions))
	}
	for i, sg := range suggestions {
		if sg.Message == "" || sg.Tone == "" {
			t.Errorf("canned suggestion %d incomplete: %+v", i, sg)
		}
	}
}
