package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

const subscriberBuffer = 16

// ProjectHub fans newly posted chat messages out to websocket subscribers,
// keyed by project. Slow subscribers are skipped rather than blocking the
// sender; the websocket feed is a convenience layer over the persisted chat,
// not a delivery guarantee.
type ProjectHub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan repository.Message]struct{}
}

// NewProjectHub creates an empty hub
func NewProjectHub() *ProjectHub {
	return &ProjectHub{
		subs: make(map[uuid.UUID]map[chan repository.Message]struct{}),
	}
}

// Subscribe registers a listener for a project's messages. The returned
// cancel function must be called when the subscriber goes away.
func (h *ProjectHub) Subscribe(projectID uuid.UUID) (<-chan repository.Message, func()) {
	ch := make(chan repository.Message, subscriberBuffer)

	h.mu.Lock()
	if h.subs[projectID] == nil {
		h.subs[projectID] = make(map[chan repository.Message]struct{})
	}
	h.subs[projectID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[projectID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, projectID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}

	return ch, cancel
}

// Publish delivers a message to every current subscriber of its project.
func (h *ProjectHub) Publish(msg repository.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[msg.ProjectID] {
		select {
		case ch <- msg:
		default:
			// Subscriber buffer full; drop rather than block.
		}
	}
}
