package room

import (
	"sync"

	"github.com/KirkDiggler/pyramid/internal/roomsync"
)

// Subscription is a live feed of full room documents
type Subscription struct {
	updates <-chan roomsync.Snapshot
	closer  func() error
	once    sync.Once
	err     error
}

// NewSubscription wraps a snapshot feed; closer is called once on Close
func NewSubscription(updates <-chan roomsync.Snapshot, closer func() error) *Subscription {
	return &Subscription{
		updates: updates,
		closer:  closer,
	}
}

// Updates yields every document broadcast for the room. It is closed after Close.
func (s *Subscription) Updates() <-chan roomsync.Snapshot {
	return s.updates
}

// Close unsubscribes
func (s *Subscription) Close() error {
	s.once.Do(func() {
		if s.closer != nil {
			s.err = s.closer()
		}
	})
	return s.err
}
