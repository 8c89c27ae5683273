package devgateway

import (
	"sync"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// Hub fans connection events out to every open event stream. Both parties
// of the pairing subscribe to the same feed, so one broadcast keeps
// recruiter and client views in sync without polling.
type Hub struct {
	mu   sync.Mutex
	subs map[chan model.ConnectionEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan model.ConnectionEvent]struct{})}
}

// Subscribe registers a stream; call the returned cancel on teardown.
func (h *Hub) Subscribe() (<-chan model.ConnectionEvent, func()) {
	ch := make(chan model.ConnectionEvent, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers ev to all subscribers; a slow subscriber's full buffer
// drops the event rather than blocking the rest.
func (h *Hub) Broadcast(ev model.ConnectionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers reports the number of open streams.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
