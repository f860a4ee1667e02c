// Package presence keeps an in-memory view of who occupies each shared space.
// It is fed by presence-change events from the platform adapter.
package presence

import (
	"context"
	"sort"
	"sync"

	"pomo-lab/contract"
	"pomo-lab/domain"

	"github.com/samber/lo"
)

var _ contract.PresencePort = (*Tracker)(nil)

// Tracker maps shared spaces to their current occupants.
// A user occupies at most one space: entering a space leaves the previous one.
type Tracker struct {
	mu        sync.RWMutex
	occupants map[string]domain.Set // space -> users
	location  map[string]string     // user -> space
}

func NewTracker() *Tracker {
	return &Tracker{
		occupants: make(map[string]domain.Set),
		location:  make(map[string]string),
	}
}

// Update records a presence change and returns the space the user left, if any.
func (t *Tracker) Update(spaceID, userID string, present bool) (left string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous, wasSomewhere := t.location[userID]
	if present {
		if wasSomewhere && previous == spaceID {
			return ""
		}
		if wasSomewhere {
			t.removeLocked(previous, userID)
		}
		if _, ok := t.occupants[spaceID]; !ok {
			t.occupants[spaceID] = make(domain.Set)
		}
		t.occupants[spaceID][userID] = struct{}{}
		t.location[userID] = spaceID
		return previous
	}

	if !wasSomewhere || previous != spaceID {
		return ""
	}
	t.removeLocked(spaceID, userID)
	return spaceID
}

func (t *Tracker) removeLocked(spaceID, userID string) {
	delete(t.location, userID)
	if members, ok := t.occupants[spaceID]; ok {
		delete(members, userID)
		// If no one is left in the space, remove the entry entirely
		if len(members) == 0 {
			delete(t.occupants, spaceID)
		}
	}
}

func (t *Tracker) IsPresent(_ context.Context, spaceID, userID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.occupants[spaceID][userID]
	return ok
}

func (t *Tracker) CurrentOccupants(_ context.Context, spaceID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	users := lo.Keys(t.occupants[spaceID])
	sort.Strings(users)
	return users
}
