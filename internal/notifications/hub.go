package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published over a session's stream.
const (
	EventConnected          = "connected"
	EventLocaleChanged      = "locale.changed"
	EventAnswerLoading      = "answer.loading"
	EventAnswerReady        = "answer.ready"
	EventAnswerError        = "answer.error"
	EventElaborationLoading = "elaboration.loading"
	EventElaborationReady   = "elaboration.ready"
	EventElaborationError   = "elaboration.error"
	EventPlaybackChanged    = "playback.changed"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
}

// NewHub creates a hub for per-session SSE subscriptions.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for a session and returns the channel plus an
// unsubscribe function.
func (h *Hub) Subscribe(sessionID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, 10)

	h.mu.Lock()
	defer h.mu.Unlock()

	sessionSubs, ok := h.subscribers[sessionID]
	if !ok {
		sessionSubs = make(map[chan Event]struct{})
		h.subscribers[sessionID] = sessionSubs
	}
	sessionSubs[ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subs, exists := h.subscribers[sessionID]; exists {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, sessionID)
			}
		}
		close(ch)
	}
}

// Publish delivers an event to every subscriber of the session. Delivery is
// best-effort: slow subscribers drop events rather than block the publisher.
func (h *Hub) Publish(sessionID uuid.UUID, event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	subs, ok := h.subscribers[sessionID]
	if !ok {
		return
	}

	for ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}
