// Package feed implements the in-process change-feed broadcaster behind the
// Subscribe RPC. There is no replay of missed events and no delivery
// guarantee beyond each subscriber channel's own order.
package feed

import (
	"context"
	"sync"

	"vaxreg/internal/logging"
	"vaxreg/internal/models"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// falls further behind than this loses events rather than stalling the
// publisher.
const subscriberBuffer = 16

type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.ChangeEvent
	logger logging.Logger
}

func NewHub(logger logging.Logger) *Hub {
	return &Hub{
		subs:   make(map[int]chan models.ChangeEvent),
		logger: logger.With("module", "feed"),
	}
}

// Subscribe registers a new subscriber and returns its event channel plus a
// cancel function. The channel is closed when cancel is called; cancel is
// idempotent.
func (h *Hub) Subscribe() (<-chan models.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.ChangeEvent, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers ev to every current subscriber without blocking. Events
// for a full subscriber channel are dropped.
func (h *Hub) Publish(ctx context.Context, ev models.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn(ctx, "dropping change event for slow subscriber",
				"subscriber", id, "type", ev.Type, "record_id", ev.RecordID)
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
