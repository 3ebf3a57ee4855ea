package api

import (
	"context"
	"sync"

	"vaxreg/internal/models"
)

const subscriptionBuffer = 16

// Subscription is a live handle on the change feed. Events arrive on
// Events() until Close is called or the stream ends; the channel is
// closed afterwards. There is no replay and no reconnect.
type Subscription struct {
	events chan models.ChangeEvent
	cancel context.CancelFunc
	once   sync.Once
}

func newSubscription(cancel context.CancelFunc) *Subscription {
	return &Subscription{
		events: make(chan models.ChangeEvent, subscriptionBuffer),
		cancel: cancel,
	}
}

// Events returns the channel change events are delivered on.
func (s *Subscription) Events() <-chan models.ChangeEvent {
	return s.events
}

// Close stops delivery. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}
