package server

import (
	"sync"
	"time"
)

// Event is one observation pushed to SSE subscribers.
type Event struct {
	Type string    `json:"type"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// Hub fans simulation observations out to SSE subscribers. It
// implements status.Sink so it can be plugged straight into the office.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel removes it;
// events arriving while the subscriber is saturated are dropped.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 64)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) broadcast(eventType, text string) {
	ev := Event{Type: eventType, Text: text, Time: time.Now().UTC()}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Status implements status.Sink.
func (h *Hub) Status(text string) { h.broadcast("status", text) }

// Communication implements status.Sink.
func (h *Hub) Communication(text string) { h.broadcast("communication", text) }

// WorkStarted implements status.Sink.
func (h *Hub) WorkStarted(agentName string) { h.broadcast("work_started", agentName) }

// WorkStopped implements status.Sink.
func (h *Hub) WorkStopped(agentName string) { h.broadcast("work_stopped", agentName) }
