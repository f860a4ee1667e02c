package runtime

import (
	"sort"
	"sync"

	"pomo-lab/contract"
	"pomo-lab/domain"
	"pomo-lab/errors"

	"github.com/samber/lo"
)

var _ contract.ISessionRegistry = (*Registry)(nil)

// Registry maps each owner to their single active session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.SessionHandle // map owner -> session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.SessionHandle)}
}

// Register inserts a session unless its owner already runs one.
func (r *Registry) Register(h contract.SessionHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[h.OwnerID()]; ok {
		return errors.ErrAlreadyActive
	}
	r.sessions[h.OwnerID()] = h
	return nil
}

func (r *Registry) Get(ownerID string) (contract.SessionHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.sessions[ownerID]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return h, nil
}

// Stop asks the owner's session to terminate at its next tick.
func (r *Registry) Stop(ownerID string) error {
	h, err := r.Get(ownerID)
	if err != nil {
		return err
	}
	h.Signal(domain.SignalStop)
	return nil
}

// FindByParticipant resolves the session userID belongs to. A session the
// user owns wins over one they joined.
func (r *Registry) FindByParticipant(userID string) (contract.SessionHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.sessions[userID]; ok {
		return h, true
	}
	owners := lo.Keys(r.sessions)
	sort.Strings(owners)
	for _, owner := range owners {
		if h := r.sessions[owner]; h.Roster().Contains(userID) {
			return h, true
		}
	}
	return nil, false
}

// Remove is idempotent.
func (r *Registry) Remove(ownerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, ownerID)
}

// All returns the active sessions ordered by owner.
func (r *Registry) All() []contract.SessionHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owners := lo.Keys(r.sessions)
	sort.Strings(owners)
	return lo.Map(owners, func(owner string, _ int) contract.SessionHandle {
		return r.sessions[owner]
	})
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
