package ui

import (
	"slices"
	"testing"
	"time"
)

func TestMessagesExpire(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMessages(time.Second, 4)
	m.now = func() time.Time { return now }

	m.Post("saved")
	now = now.Add(500 * time.Millisecond)
	m.Post("loaded")
	if got := m.Active(); !slices.Equal(got, []string{"saved", "loaded"}) {
		t.Fatalf("active = %v", got)
	}

	now = now.Add(600 * time.Millisecond)
	if got := m.Active(); !slices.Equal(got, []string{"loaded"}) {
		t.Fatalf("after first expiry = %v", got)
	}
	now = now.Add(time.Second)
	if got := m.Active(); len(got) != 0 {
		t.Fatalf("expected no messages, got %v", got)
	}
}

func TestMessagesLimit(t *testing.T) {
	m := NewMessages(time.Minute, 2)
	m.Post("a")
	m.Post("b")
	m.Post("c")
	if got := m.Active(); !slices.Equal(got, []string{"b", "c"}) {
		t.Fatalf("active = %v", got)
	}
}
