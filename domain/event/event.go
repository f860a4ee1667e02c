package event

import (
	"time"

	"pomo-lab/domain"

	"github.com/google/uuid"
)

type Kind string

const (
	SessionStarted   Kind = "session_started"
	PhaseStarted     Kind = "phase_started"
	Progress         Kind = "progress"
	WorkCompleted    Kind = "work_completed"
	BreakCompleted   Kind = "break_completed"
	SessionPaused    Kind = "session_paused"
	SessionResumed   Kind = "session_resumed"
	SessionStopped   Kind = "session_stopped"
	PresenceLost     Kind = "presence_lost"
	CreditFailed     Kind = "credit_failed"
	ParticipantAdded Kind = "participant_joined"
	ParticipantLeft  Kind = "participant_left"
)

// Notification is a fire-and-forget status push about one session.
// Only the fields relevant to Kind are set.
type Notification struct {
	SessionID        uuid.UUID      `json:"sessionId"`
	OwnerID          string         `json:"ownerId"`
	Kind             Kind           `json:"kind"`
	Phase            domain.Phase   `json:"phase"`
	SessionCount     int            `json:"sessionCount"`
	RemainingMinutes int            `json:"remainingMinutes,omitempty"`
	PhaseMinutes     int            `json:"phaseMinutes,omitempty"`
	Members          []string       `json:"members,omitempty"`
	Credited         []string       `json:"credited,omitempty"`
	UserID           string         `json:"userId,omitempty"`
	SessionWork      map[string]int `json:"sessionWork,omitempty"`
	Error            string         `json:"error,omitempty"`
	At               time.Time      `json:"at"`
}

// Final reports whether the notification closes the session.
func (n Notification) Final() bool {
	return n.Kind == SessionStopped || n.Kind == PresenceLost
}
