package workers

import (
	"sync"

	"pomo-lab/domain"
)

// Mailbox queues control signals for a session loop.
// Producers push from any goroutine; the loop drains once per tick.
type Mailbox struct {
	mu      sync.Mutex
	pending []domain.Signal
}

func (m *Mailbox) Push(s domain.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, s)
}

// Drain returns the queued signals in arrival order and empties the mailbox.
func (m *Mailbox) Drain() []domain.Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	signals := m.pending
	m.pending = nil
	return signals
}
