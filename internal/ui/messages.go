package ui

import (
	"sync"
	"time"
)

// Messages is a small queue of transient notices shown on screen until they
// expire. It is safe for concurrent use.
type Messages struct {
	mu    sync.Mutex
	ttl   time.Duration
	limit int
	now   func() time.Time
	items []message
}

type message struct {
	text    string
	expires time.Time
}

// NewMessages keeps at most limit notices, each for ttl.
func NewMessages(ttl time.Duration, limit int) *Messages {
	if limit <= 0 {
		limit = 1
	}
	return &Messages{ttl: ttl, limit: limit, now: time.Now}
}

// Post adds a notice, evicting the oldest when full.
func (m *Messages) Post(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, message{text: text, expires: m.now().Add(m.ttl)})
	if over := len(m.items) - m.limit; over > 0 {
		m.items = m.items[over:]
	}
}

// Active returns the unexpired notices, oldest first.
func (m *Messages) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	kept := m.items[:0]
	for _, it := range m.items {
		if now.Before(it.expires) {
			kept = append(kept, it)
		}
	}
	m.items = kept
	out := make([]string, len(kept))
	for i, it := range kept {
		out[i] = it.text
	}
	return out
}
