package workers

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"pomo-lab/contract"
	"pomo-lab/domain"
	"pomo-lab/domain/event"

	"github.com/samber/lo"
)

var (
	_ contract.Worker        = (*SessionWorker)(nil)
	_ contract.SessionHandle = (*SessionWorker)(nil)
)

// SessionWorker drives the work/break cycle of one owner.
//
// The tick loop is the only writer of the session's phase, countdown,
// counters and credited work. Control signals arrive through the mailbox and
// are applied at the start of the next tick; roster changes go through the
// roster's own lock. mu only protects readers taking snapshots.
type SessionWorker struct {
	log           *slog.Logger
	mu            sync.RWMutex
	session       *domain.Session
	presence      contract.PresencePort
	stats         contract.StatsStore
	notifications chan<- event.Notification
	mailbox       Mailbox
	tickInterval  time.Duration
	onExit        func(ownerID string)

	// loop-only state
	started       bool
	stopRequested bool
}

func NewSessionWorker(
	log *slog.Logger,
	session *domain.Session,
	presence contract.PresencePort,
	stats contract.StatsStore,
	notifications chan<- event.Notification,
	tickInterval time.Duration,
	onExit func(ownerID string)) *SessionWorker {
	return &SessionWorker{
		log:           log.With("owner", session.OwnerID, "session", session.ID.String()),
		session:       session,
		presence:      presence,
		stats:         stats,
		notifications: notifications,
		tickInterval:  tickInterval,
		onExit:        onExit,
	}
}

func (w *SessionWorker) OwnerID() string { return w.session.OwnerID }

func (w *SessionWorker) Roster() *domain.Roster { return w.session.Roster }

// Signal queues a control signal. It never blocks.
func (w *SessionWorker) Signal(s domain.Signal) {
	w.mailbox.Push(s)
}

func (w *SessionWorker) Snapshot() domain.Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.session.Snapshot()
}

// Run ticks until the session ends or ctx is canceled. After a restart it
// resumes from the retained session state.
func (w *SessionWorker) Run(ctx context.Context) error {
	if !w.started {
		w.started = true
		w.emit(event.SessionStarted, func(n *event.Notification) {
			n.PhaseMinutes = w.session.Config.WorkMinutes
			n.Members = w.session.Roster.Members()
		})
	}

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping session worker")
			return ctx.Err()
		case <-ticker.C:
			if w.Tick(ctx) {
				return nil
			}
		}
	}
}

// Tick performs one evaluation step and reports whether the session ended.
func (w *SessionWorker) Tick(ctx context.Context) bool {
	for _, s := range w.mailbox.Drain() {
		w.apply(s)
	}

	if !w.anyMemberPresent(ctx) {
		w.terminate(domain.EndedByPresenceLoss, event.PresenceLost)
		return true
	}
	if w.stopRequested {
		w.terminate(domain.StoppedByUser, event.SessionStopped)
		return true
	}
	if w.session.Paused() {
		return false
	}

	w.mu.Lock()
	w.session.RemainingSeconds--
	remaining := w.session.RemainingSeconds
	w.mu.Unlock()

	if remaining > 0 {
		if remaining%60 == 0 {
			w.emit(event.Progress, func(n *event.Notification) {
				n.RemainingMinutes = remaining / 60
			})
		}
		return false
	}

	w.completePhase(ctx)
	return false
}

func (w *SessionWorker) apply(s domain.Signal) {
	switch s {
	case domain.SignalPause:
		if w.session.State != domain.Running {
			return
		}
		w.setState(domain.Paused)
		w.emit(event.SessionPaused, nil)
	case domain.SignalResume:
		if w.session.State != domain.Paused {
			return
		}
		w.setState(domain.Running)
		w.emit(event.SessionResumed, nil)
	case domain.SignalStop:
		w.stopRequested = true
	default:
		w.log.Warn("Unknown control signal ignored", "signal", s)
	}
}

func (w *SessionWorker) setState(state domain.State) {
	w.mu.Lock()
	w.session.State = state
	w.mu.Unlock()
}

func (w *SessionWorker) completePhase(ctx context.Context) {
	session := w.session
	if !session.Phase.IsWork() {
		w.emit(event.BreakCompleted, nil)
		w.mu.Lock()
		session.StartWork()
		w.mu.Unlock()
		w.emitPhaseStarted()
		return
	}

	// The count, the credit and the next phase land together before any
	// storage call, so a worker restarted mid-credit never sees this work
	// phase at zero again.
	credited := w.presentMembers(ctx)
	workMinutes := session.Config.WorkMinutes
	w.mu.Lock()
	session.SessionCount++
	session.Credit(credited)
	kind, minutes := session.Config.BreakAfter(session.SessionCount)
	if minutes == 0 {
		session.StartWork()
	} else {
		session.StartBreak(kind, minutes)
	}
	w.mu.Unlock()

	for _, participant := range credited {
		if _, err := w.stats.Upsert(ctx, participant, workMinutes); err != nil {
			w.log.Error("Failed to credit participant", "participant", participant, "error", err)
			w.emit(event.CreditFailed, func(n *event.Notification) {
				n.Phase = domain.WorkPhase()
				n.UserID = participant
				n.Error = err.Error()
			})
		}
	}
	w.emit(event.WorkCompleted, func(n *event.Notification) {
		n.Phase = domain.WorkPhase()
		n.Credited = credited
		n.PhaseMinutes = workMinutes
	})
	w.emitPhaseStarted()
}

// presentMembers is the roster restricted to the current occupants of the
// owner's space. It falls back to the owner alone so a completed work phase
// always credits someone.
func (w *SessionWorker) presentMembers(ctx context.Context) []string {
	occupants := lo.SliceToMap(w.presence.CurrentOccupants(ctx, w.session.SpaceID),
		func(id string) (string, struct{}) { return id, struct{}{} })
	present := lo.Filter(w.session.Roster.Members(), func(id string, _ int) bool {
		_, ok := occupants[id]
		return ok
	})
	if len(present) == 0 {
		return []string{w.session.OwnerID}
	}
	return present
}

func (w *SessionWorker) anyMemberPresent(ctx context.Context) bool {
	return lo.SomeBy(w.session.Roster.Members(), func(id string) bool {
		return w.presence.IsPresent(ctx, w.session.SpaceID, id)
	})
}

func (w *SessionWorker) terminate(state domain.State, kind event.Kind) {
	if w.onExit != nil {
		w.onExit(w.session.OwnerID)
	}
	w.setState(state)
	w.log.Info("Session ended", "state", state, "sessions", w.session.SessionCount)
	w.emit(kind, func(n *event.Notification) {
		w.mu.RLock()
		n.SessionWork = maps.Clone(w.session.SessionWork)
		w.mu.RUnlock()
		n.Members = w.session.Roster.Members()
	})
}

func (w *SessionWorker) emitPhaseStarted() {
	w.emit(event.PhaseStarted, func(n *event.Notification) {
		n.PhaseMinutes = w.session.RemainingSeconds / 60
		n.Members = w.session.Roster.Members()
	})
}

// emit pushes a notification without blocking the tick loop.
func (w *SessionWorker) emit(kind event.Kind, fill func(n *event.Notification)) {
	n := event.Notification{
		SessionID:    w.session.ID,
		OwnerID:      w.session.OwnerID,
		Kind:         kind,
		Phase:        w.session.Phase,
		SessionCount: w.session.SessionCount,
		At:           time.Now().UTC(),
	}
	if fill != nil {
		fill(&n)
	}
	select {
	case w.notifications <- n:
	default:
		w.log.Warn("Notification channel full, dropping notification", "kind", kind)
	}
}
