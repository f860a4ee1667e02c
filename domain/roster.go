// Package domain contains core concepts of the timer system.
// This file defines the Roster and its membership invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"sort"
	"sync"

	"pomo-lab/errors"

	"github.com/samber/lo"
)

type Set map[string]struct{}

// Roster is the set of users tied to one owner's session.
// The owner is always a member but is never stored in extra, so removing
// extra members can never drop the owner.
// Roster is safe for concurrent use by multiple goroutines.
type Roster struct {
	mu      sync.RWMutex
	ownerID string
	extra   Set
}

func NewRoster(ownerID string) *Roster {
	return &Roster{ownerID: ownerID, extra: make(Set)}
}

func (r *Roster) OwnerID() string { return r.ownerID }

// Join adds userID and returns the updated member list for display.
func (r *Roster) Join(userID string) ([]string, error) {
	if userID == r.ownerID {
		return nil, errors.ErrSelfJoin
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.extra[userID]; ok {
		return nil, errors.ErrAlreadyJoined
	}
	r.extra[userID] = struct{}{}
	return r.membersLocked(), nil
}

func (r *Roster) Leave(userID string) error {
	if userID == r.ownerID {
		return errors.ErrSelfLeave
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.extra[userID]; !ok {
		return errors.ErrNotJoined
	}
	delete(r.extra, userID)
	return nil
}

// PresenceExit drops userID after it left the shared space.
// It reports whether the user was removed. The owner is never removed.
func (r *Roster) PresenceExit(userID string) bool {
	if userID == r.ownerID {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.extra[userID]; !ok {
		return false
	}
	delete(r.extra, userID)
	return true
}

// Members returns the owner first, then the extra members sorted.
func (r *Roster) Members() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.membersLocked()
}

func (r *Roster) Contains(userID string) bool {
	if userID == r.ownerID {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.extra[userID]
	return ok
}

func (r *Roster) Extra() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	extra := lo.Keys(r.extra)
	sort.Strings(extra)
	return extra
}

func (r *Roster) membersLocked() []string {
	extra := lo.Keys(r.extra)
	sort.Strings(extra)
	return append([]string{r.ownerID}, extra...)
}
