package runtime_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pomo-lab/domain"
	"pomo-lab/domain/event"
	"pomo-lab/errors"
	"pomo-lab/presence"
	"pomo-lab/repositories"
	"pomo-lab/runtime"
	"pomo-lab/runtime/workers"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const space = "library"

type RecordingSink struct {
	mu            sync.Mutex
	notifications []event.Notification
}

func (s *RecordingSink) Consume(_ context.Context, n event.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *RecordingSink) Has(kind event.Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.SomeBy(s.notifications, func(n event.Notification) bool { return n.Kind == kind })
}

type orchestratorFixture struct {
	orchestrator *runtime.Orchestrator
	registry     *runtime.Registry
	tracker      *presence.Tracker
	sink         *RecordingSink
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)

	f := &orchestratorFixture{
		registry: runtime.NewRegistry(),
		tracker:  presence.NewTracker(),
		sink:     &RecordingSink{},
	}
	f.orchestrator = runtime.NewOrchestrator(log, workers.NewSupervisor(log, 10*time.Millisecond), f.registry,
		repositories.NewStatsRepository(db, log), f.tracker, runtime.Options{TickInterval: time.Millisecond})
	f.orchestrator.AddSinks(f.sink)
	require.NoError(t, f.orchestrator.Start(context.Background()))

	t.Cleanup(func() {
		f.orchestrator.Stop()
		_ = db.Close()
	})
	return f
}

func (f *orchestratorFixture) enter(users ...string) {
	for _, u := range users {
		f.tracker.Update(space, u, true)
	}
}

// leave mirrors what the presence endpoint does on a departure.
func (f *orchestratorFixture) leave(user string) {
	if left := f.tracker.Update(space, user, false); left != "" {
		f.orchestrator.OnPresenceChanged(left, user, false)
	}
}

func longConfig() domain.SessionConfig {
	return domain.SessionConfig{WorkMinutes: 60, ShortBreakMinutes: 5, LongBreakMinutes: 15, LongBreakInterval: 4}
}

func TestOrchestrator_Start_Session_Requires_Owner_Presence(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)

	// Given alice is not in any space
	// When she starts a session
	_, err := f.orchestrator.StartSession("alice", space, longConfig())

	// Then
	req.ErrorIs(err, errors.ErrOwnerNotPresent)
	req.Zero(f.registry.Len())
}

func TestOrchestrator_Start_Session_Rejects_Invalid_Config(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice")

	_, err := f.orchestrator.StartSession("alice", space, domain.SessionConfig{WorkMinutes: 0, LongBreakInterval: 4})

	req.ErrorIs(err, errors.ErrInvalidConfig)
}

func TestOrchestrator_Start_Session_Once_Per_Owner(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice")

	// Given a running session
	snapshot, err := f.orchestrator.StartSession("alice", space, longConfig())
	req.NoError(err)
	req.Equal("alice", snapshot.OwnerID)
	req.Equal(domain.Running, snapshot.State)
	req.Equal(60*60, snapshot.RemainingSeconds)

	// When alice starts again
	_, err = f.orchestrator.StartSession("alice", space, longConfig())

	// Then
	req.ErrorIs(err, errors.ErrAlreadyActive)
	req.Len(f.orchestrator.ListSessions(), 1)

	// And a running session wins over an invalid config or an empty space
	_, err = f.orchestrator.StartSession("alice", space, domain.SessionConfig{})
	req.ErrorIs(err, errors.ErrAlreadyActive)
	_, err = f.orchestrator.StartSession("alice", "empty-room", longConfig())
	req.ErrorIs(err, errors.ErrAlreadyActive)
	req.Len(f.orchestrator.ListSessions(), 1)
}

func TestOrchestrator_Not_Started(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tracker := presence.NewTracker()
	tracker.Update(space, "alice", true)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 0), runtime.NewRegistry(),
		nil, tracker, runtime.Options{})

	_, err := orchestrator.StartSession("alice", space, longConfig())

	req.ErrorIs(err, errors.ErrOrchestratorNotStarted)
	req.Equal(domain.DefaultSessionConfig(), orchestrator.Defaults())
}

func TestOrchestrator_Controls_On_Unknown_Session(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)

	req.ErrorIs(f.orchestrator.PauseSession("ghost"), errors.ErrSessionNotFound)
	req.ErrorIs(f.orchestrator.ResumeSession("ghost"), errors.ErrSessionNotFound)
	req.ErrorIs(f.orchestrator.StopSession("ghost"), errors.ErrSessionNotFound)
	_, err := f.orchestrator.JoinSession("ghost", "bob")
	req.ErrorIs(err, errors.ErrSessionNotFound)
	req.ErrorIs(f.orchestrator.LeaveSession("ghost", "bob"), errors.ErrSessionNotFound)
	_, err = f.orchestrator.GetSessionStatus("ghost")
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestOrchestrator_Pause_Then_Stop_Frees_The_Owner(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice")
	_, err := f.orchestrator.StartSession("alice", space, longConfig())
	req.NoError(err)

	// When alice pauses
	req.NoError(f.orchestrator.PauseSession("alice"))

	// Then the status reports the pause
	req.Eventually(func() bool {
		s, err := f.orchestrator.GetSessionStatus("alice")
		return err == nil && s.State == domain.Paused
	}, time.Second, 5*time.Millisecond)

	// When she stops
	req.NoError(f.orchestrator.StopSession("alice"))

	// Then the session is gone and a final notification was delivered
	req.Eventually(func() bool { return f.registry.Len() == 0 }, time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return f.sink.Has(event.SessionStopped) }, time.Second, 5*time.Millisecond)

	// And she can start a new one
	_, err = f.orchestrator.StartSession("alice", space, longConfig())
	req.NoError(err)
}

func TestOrchestrator_Join_Leave_And_Presence_Exit(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice", "bob", "carol")
	_, err := f.orchestrator.StartSession("alice", space, longConfig())
	req.NoError(err)

	// When bob and carol join
	members, err := f.orchestrator.JoinSession("alice", "bob")
	req.NoError(err)
	req.Equal([]string{"alice", "bob"}, members)
	members, err = f.orchestrator.JoinSession("alice", "carol")
	req.NoError(err)
	req.Equal([]string{"alice", "bob", "carol"}, members)

	// Then bob sees alice's session
	status, err := f.orchestrator.GetSessionStatus("bob")
	req.NoError(err)
	req.Equal("alice", status.OwnerID)

	// And joining twice or joining oneself is refused
	_, err = f.orchestrator.JoinSession("alice", "bob")
	req.ErrorIs(err, errors.ErrAlreadyJoined)
	_, err = f.orchestrator.JoinSession("alice", "alice")
	req.ErrorIs(err, errors.ErrSelfJoin)

	// When carol leaves explicitly and bob walks out of the space
	req.NoError(f.orchestrator.LeaveSession("alice", "carol"))
	f.leave("bob")

	// Then alice is alone again
	status, err = f.orchestrator.GetSessionStatus("alice")
	req.NoError(err)
	req.Equal([]string{"alice"}, status.Members)
	req.ErrorIs(f.orchestrator.LeaveSession("alice", "alice"), errors.ErrSelfLeave)
	req.ErrorIs(f.orchestrator.LeaveSession("alice", "bob"), errors.ErrNotJoined)
	req.Eventually(func() bool {
		return f.sink.Has(event.ParticipantAdded) && f.sink.Has(event.ParticipantLeft)
	}, time.Second, 5*time.Millisecond)
}

func TestOrchestrator_Owner_Leaving_Ends_Session(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice")
	_, err := f.orchestrator.StartSession("alice", space, longConfig())
	req.NoError(err)

	// When alice walks out and nobody else is there
	f.leave("alice")

	// Then the session ends by presence loss
	req.Eventually(func() bool { return f.registry.Len() == 0 }, time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return f.sink.Has(event.PresenceLost) }, time.Second, 5*time.Millisecond)
}

func TestOrchestrator_Completed_Work_Is_Credited(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	f.enter("alice")
	cfg := domain.SessionConfig{WorkMinutes: 1, ShortBreakMinutes: 0, LongBreakMinutes: 0, LongBreakInterval: 1}

	// Given a one-minute work phase ticking every millisecond
	_, err := f.orchestrator.StartSession("alice", space, cfg)
	req.NoError(err)

	// Then alice's lifetime stats grow
	req.Eventually(func() bool {
		record, err := f.orchestrator.GetUserStats(context.Background(), "alice")
		return err == nil && record.TotalMinutes >= 1 && record.TotalSessions >= 1
	}, 5*time.Second, 10*time.Millisecond)

	// When alice stops and resets
	req.NoError(f.orchestrator.StopSession("alice"))
	req.Eventually(func() bool { return f.registry.Len() == 0 }, time.Second, 5*time.Millisecond)
	before, err := f.orchestrator.ResetUserStats(context.Background(), "alice")
	req.NoError(err)
	req.Equal(before.TotalMinutes, before.TotalSessions)

	// Then nothing is left
	_, err = f.orchestrator.GetUserStats(context.Background(), "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)
}
