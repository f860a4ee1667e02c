// Package projection builds local timelines from observed notifications.
// Handles ordering and bounded retention.
// Does not emit notifications or interact with UI directly.
package projection

import (
	"context"
	"slices"
	"sync"

	"pomo-lab/contract"
	"pomo-lab/domain/event"
)

var _ contract.NotificationSink = (*Timeline)(nil)

const defaultTimelineSize = 50

// Timeline keeps the most recent notifications of each owner's session.
// A new session of the same owner starts a fresh timeline.
type Timeline struct {
	mu      sync.RWMutex
	size    int
	entries map[string][]event.Notification // owner -> notifications, oldest first
}

func NewTimeline(size int) *Timeline {
	if size <= 0 {
		size = defaultTimelineSize
	}
	return &Timeline{size: size, entries: make(map[string][]event.Notification)}
}

func (t *Timeline) Consume(_ context.Context, n event.Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.entries[n.OwnerID]
	if len(entries) > 0 && entries[0].SessionID != n.SessionID {
		entries = nil
	}
	entries = append(entries, n)
	if len(entries) > t.size {
		entries = entries[len(entries)-t.size:]
	}
	t.entries[n.OwnerID] = entries
	return nil
}

// Recent returns a copy of the owner's timeline, oldest first.
func (t *Timeline) Recent(ownerID string) []event.Notification {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.entries[ownerID])
}
