package history

import (
	"fmt"
	"testing"
)

func TestAppendAndGet(t *testing.T) {
	m := NewManager(10)
	m.AppendUser("u1", "hi")
	m.AppendAssistant("u1", "hello")
	m.AppendUser("u2", "other user")

	msgs := m.Get("u1")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "hi" {
		t.Errorf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "hello" {
		t.Errorf("unexpected second message: %+v", msgs[1])
	}
}

func TestWindowTrimsOldest(t *testing.T) {
	m := NewManager(4)
	for i := 0; i < 10; i++ {
		m.AppendUser("u1", fmt.Sprintf("msg %d", i))
	}
	msgs := m.Get("u1")
	if len(msgs) != 4 {
		t.Fatalf("expected window of 4, got %d", len(msgs))
	}
	if msgs[0].Content != "msg 6" {
		t.Errorf("expected oldest surviving message to be msg 6, got %q", msgs[0].Content)
	}
}

func TestReset(t *testing.T) {
	m := NewManager(10)
	m.AppendUser("u1", "hi")
	m.Reset("u1")
	if got := m.Get("u1"); len(got) != 0 {
		t.Errorf("expected empty window after reset, got %d messages", len(got))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewManager(10)
	m.AppendUser("u1", "original")
	msgs := m.Get("u1")
	msgs[0].Content = "mutated"
	if got := m.Get("u1"); got[0].Content != "original" {
		t.Errorf("window was mutated through the returned slice")
	}
}
