package projection

import (
	"context"
	"testing"
	"time"

	"pomo-lab/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume_Keeps_Order(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(10)
	ctx := context.Background()
	sessionID := uuid.New()

	evt1 := event.Notification{SessionID: sessionID, OwnerID: "alice", Kind: event.SessionStarted, At: time.Now()}
	evt2 := event.Notification{SessionID: sessionID, OwnerID: "alice", Kind: event.Progress, At: time.Now().Add(time.Minute)}

	req.NoError(timeline.Consume(ctx, evt1))
	req.NoError(timeline.Consume(ctx, evt2))

	recent := timeline.Recent("alice")
	req.Len(recent, 2)
	req.Equal(event.SessionStarted, recent[0].Kind)
	req.Equal(event.Progress, recent[1].Kind)
	req.Empty(timeline.Recent("bob"))
}

func TestTimeline_Bounded_Size(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)
	sessionID := uuid.New()

	for i := 1; i <= 5; i++ {
		req.NoError(timeline.Consume(context.Background(), event.Notification{
			SessionID: sessionID, OwnerID: "alice", Kind: event.Progress, RemainingMinutes: i,
		}))
	}

	recent := timeline.Recent("alice")
	req.Len(recent, 3)
	req.Equal(3, recent[0].RemainingMinutes)
	req.Equal(5, recent[2].RemainingMinutes)
}

func TestTimeline_New_Session_Resets_Owner_Timeline(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(10)
	ctx := context.Background()

	req.NoError(timeline.Consume(ctx, event.Notification{SessionID: uuid.New(), OwnerID: "alice", Kind: event.SessionStopped}))
	req.NoError(timeline.Consume(ctx, event.Notification{SessionID: uuid.New(), OwnerID: "alice", Kind: event.SessionStarted}))

	recent := timeline.Recent("alice")
	req.Len(recent, 1)
	req.Equal(event.SessionStarted, recent[0].Kind)
}
