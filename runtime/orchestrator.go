// Package runtime handles session lifecycles, control delivery and notification propagation.
// It orchestrates the system without containing the timer rules themselves.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pomo-lab/contract"
	"pomo-lab/domain"
	"pomo-lab/domain/event"
	"pomo-lab/errors"
	"pomo-lab/runtime/workers"

	"github.com/samber/lo"
)

type Options struct {
	TickInterval           time.Duration
	SinkTimeout            time.Duration
	NotificationBufferSize int
	Defaults               domain.SessionConfig
	Observer               workers.Observer
}

type Orchestrator struct {
	mu            sync.Mutex
	log           *slog.Logger
	supervisor    contract.ISupervisor
	registry      contract.ISessionRegistry
	stats         contract.StatsStore
	presence      contract.PresencePort
	sinks         []contract.NotificationSink
	notifications chan event.Notification
	options       Options
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry contract.ISessionRegistry,
	stats contract.StatsStore, presence contract.PresencePort, options Options) *Orchestrator {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.SinkTimeout <= 0 {
		options.SinkTimeout = time.Second
	}
	if options.NotificationBufferSize <= 0 {
		options.NotificationBufferSize = 256
	}
	if options.Defaults == (domain.SessionConfig{}) {
		options.Defaults = domain.DefaultSessionConfig()
	}
	return &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		registry:      registry,
		stats:         stats,
		presence:      presence,
		notifications: make(chan event.Notification, options.NotificationBufferSize),
		options:       options,
	}
}

// AddSinks registers notification sinks. Call before Start.
func (o *Orchestrator) AddSinks(sinks ...contract.NotificationSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// Start launches the notification fanout and any background workers under
// supervision. Sessions started afterwards run under the same context.
func (o *Orchestrator) Start(ctx context.Context, background ...contract.Worker) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ctx != nil {
		return nil
	}
	o.ctx, o.cancel = context.WithCancel(ctx)

	fanout := workers.NewNotificationFanout(o.log, o.notifications, o.options.Observer,
		o.options.SinkTimeout, o.sinks...)
	o.supervisor.Start(o.ctx, fanout)
	for _, w := range background {
		o.supervisor.Start(o.ctx, w)
	}
	o.log.Info("Orchestrator started", "tick", o.options.TickInterval, "sinks", len(o.sinks))
	return nil
}

// Stop cancels every supervised worker and waits for them to return.
// Running sessions are abandoned without a final notification.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	o.supervisor.Wait()
	o.log.Debug("All supervised workers stopped")
}

// Channels exposes the internal queues for capacity sampling.
func (o *Orchestrator) Channels() []workers.NamedChannel {
	return []workers.NamedChannel{{Name: "notifications", Channel: o.notifications}}
}

// Ready reports whether sessions can be started.
func (o *Orchestrator) Ready() bool {
	_, err := o.runContext()
	return err == nil
}

func (o *Orchestrator) Defaults() domain.SessionConfig {
	return o.options.Defaults
}

func (o *Orchestrator) runContext() (context.Context, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ctx == nil || o.ctx.Err() != nil {
		return nil, errors.ErrOrchestratorNotStarted
	}
	return o.ctx, nil
}

// StartSession creates and registers a session for ownerID in spaceID.
func (o *Orchestrator) StartSession(ownerID, spaceID string, config domain.SessionConfig) (domain.Snapshot, error) {
	ctx, err := o.runContext()
	if err != nil {
		return domain.Snapshot{}, err
	}
	if _, err = o.registry.Get(ownerID); err == nil {
		return domain.Snapshot{}, errors.ErrAlreadyActive
	}
	if err = config.Validate(); err != nil {
		return domain.Snapshot{}, err
	}
	if !o.presence.IsPresent(ctx, spaceID, ownerID) {
		return domain.Snapshot{}, errors.ErrOwnerNotPresent
	}

	session := domain.NewSession(ownerID, spaceID, config, time.Now().UTC())
	worker := workers.NewSessionWorker(o.log, session, o.presence, o.stats,
		o.notifications, o.options.TickInterval, o.registry.Remove)
	if err = o.registry.Register(worker); err != nil {
		return domain.Snapshot{}, err
	}
	o.supervisor.Start(ctx, worker)
	o.log.Info("Session started", "owner", ownerID, "space", spaceID, "session", session.ID.String())
	return worker.Snapshot(), nil
}

func (o *Orchestrator) PauseSession(ownerID string) error {
	return o.signal(ownerID, domain.SignalPause)
}

func (o *Orchestrator) ResumeSession(ownerID string) error {
	return o.signal(ownerID, domain.SignalResume)
}

func (o *Orchestrator) StopSession(ownerID string) error {
	return o.registry.Stop(ownerID)
}

func (o *Orchestrator) signal(ownerID string, s domain.Signal) error {
	h, err := o.registry.Get(ownerID)
	if err != nil {
		return err
	}
	h.Signal(s)
	return nil
}

// JoinSession adds userID to the owner's roster and returns the members.
func (o *Orchestrator) JoinSession(ownerID, userID string) ([]string, error) {
	h, err := o.registry.Get(ownerID)
	if err != nil {
		return nil, err
	}
	members, err := h.Roster().Join(userID)
	if err != nil {
		return nil, err
	}
	o.notifyRoster(h, event.ParticipantAdded, userID)
	return members, nil
}

func (o *Orchestrator) LeaveSession(ownerID, userID string) error {
	h, err := o.registry.Get(ownerID)
	if err != nil {
		return err
	}
	if err = h.Roster().Leave(userID); err != nil {
		return err
	}
	o.notifyRoster(h, event.ParticipantLeft, userID)
	return nil
}

// OnPresenceChanged drops a user who left a shared space from every roster
// they joined. Owners are never removed this way; their sessions end on the
// next tick when nobody is left.
func (o *Orchestrator) OnPresenceChanged(spaceID, userID string, nowPresent bool) {
	if nowPresent {
		return
	}
	for _, h := range o.registry.All() {
		if h.Roster().PresenceExit(userID) {
			o.log.Debug("Participant left the shared space", "owner", h.OwnerID(), "user", userID, "space", spaceID)
			o.notifyRoster(h, event.ParticipantLeft, userID)
		}
	}
}

// GetSessionStatus returns the session userID owns or joined.
func (o *Orchestrator) GetSessionStatus(userID string) (domain.Snapshot, error) {
	h, ok := o.registry.FindByParticipant(userID)
	if !ok {
		return domain.Snapshot{}, errors.ErrSessionNotFound
	}
	return h.Snapshot(), nil
}

func (o *Orchestrator) ListSessions() []domain.Snapshot {
	return lo.Map(o.registry.All(), func(h contract.SessionHandle, _ int) domain.Snapshot {
		return h.Snapshot()
	})
}

func (o *Orchestrator) GetUserStats(ctx context.Context, userID string) (domain.StatsRecord, error) {
	return o.stats.Get(ctx, userID)
}

func (o *Orchestrator) ResetUserStats(ctx context.Context, userID string) (domain.StatsRecord, error) {
	return o.stats.Reset(ctx, userID)
}

func (o *Orchestrator) notifyRoster(h contract.SessionHandle, kind event.Kind, userID string) {
	snapshot := h.Snapshot()
	n := event.Notification{
		SessionID:    snapshot.ID,
		OwnerID:      snapshot.OwnerID,
		Kind:         kind,
		Phase:        snapshot.Phase,
		SessionCount: snapshot.SessionCount,
		Members:      snapshot.Members,
		UserID:       userID,
		At:           time.Now().UTC(),
	}
	select {
	case o.notifications <- n:
	default:
		o.log.Warn("Notification channel full, dropping notification", "kind", kind, "owner", snapshot.OwnerID)
	}
}
