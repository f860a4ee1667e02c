package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_Enter_And_Leave(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tracker := NewTracker()

	// Given alice and bob are in the study room
	tracker.Update("study", "alice", true)
	tracker.Update("study", "bob", true)

	req.True(tracker.IsPresent(ctx, "study", "alice"))
	req.Equal([]string{"alice", "bob"}, tracker.CurrentOccupants(ctx, "study"))

	// When bob leaves
	left := tracker.Update("study", "bob", false)

	// Then only alice remains
	req.Equal("study", left)
	req.False(tracker.IsPresent(ctx, "study", "bob"))
	req.Equal([]string{"alice"}, tracker.CurrentOccupants(ctx, "study"))
}

func TestTracker_Moving_Leaves_Previous_Space(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tracker := NewTracker()

	tracker.Update("study", "alice", true)

	// When alice joins another space
	left := tracker.Update("lounge", "alice", true)

	// Then she left the study room, which is now empty
	req.Equal("study", left)
	req.False(tracker.IsPresent(ctx, "study", "alice"))
	req.True(tracker.IsPresent(ctx, "lounge", "alice"))
	req.Empty(tracker.CurrentOccupants(ctx, "study"))
	req.Empty(tracker.occupants["study"])
}

func TestTracker_Leaving_A_Space_Never_Entered(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Update("lounge", "alice", true)

	req.Empty(tracker.Update("study", "alice", false))
	req.True(tracker.IsPresent(context.Background(), "lounge", "alice"))
}
