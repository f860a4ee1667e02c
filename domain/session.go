package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Session is one owner's running work/break cycle.
// It is owned by a single session worker: only its tick loop mutates
// Phase, State, SessionCount, RemainingSeconds and SessionWork.
type Session struct {
	ID               uuid.UUID
	OwnerID          string
	SpaceID          string
	Config           SessionConfig
	Phase            Phase
	State            State
	SessionCount     int
	RemainingSeconds int
	SessionWork      map[string]int
	Roster           *Roster
	StartedAt        time.Time
}

func NewSession(ownerID, spaceID string, config SessionConfig, startedAt time.Time) *Session {
	return &Session{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		SpaceID:          spaceID,
		Config:           config,
		Phase:            WorkPhase(),
		State:            Running,
		RemainingSeconds: config.WorkMinutes * 60,
		SessionWork:      make(map[string]int),
		Roster:           NewRoster(ownerID),
		StartedAt:        startedAt,
	}
}

func (s *Session) Paused() bool { return s.State == Paused }

// StartWork resets the countdown for a new work phase.
func (s *Session) StartWork() {
	s.Phase = WorkPhase()
	s.RemainingSeconds = s.Config.WorkMinutes * 60
}

func (s *Session) StartBreak(kind BreakKind, minutes int) {
	s.Phase = BreakPhase(kind)
	s.RemainingSeconds = minutes * 60
}

// Credit adds the configured work minutes to each participant.
func (s *Session) Credit(participants []string) {
	for _, p := range participants {
		s.SessionWork[p] += s.Config.WorkMinutes
	}
}

// Snapshot is a read-only copy of a session used by status queries.
type Snapshot struct {
	ID               uuid.UUID      `json:"id"`
	OwnerID          string         `json:"ownerId"`
	SpaceID          string         `json:"spaceId"`
	Config           SessionConfig  `json:"config"`
	Phase            Phase          `json:"phase"`
	State            State          `json:"state"`
	SessionCount     int            `json:"sessionCount"`
	RemainingSeconds int            `json:"remainingSeconds"`
	TotalWork        int            `json:"totalWorkMinutes"`
	Members          []string       `json:"members"`
	SessionWork      map[string]int `json:"sessionWork"`
	StartedAt        time.Time      `json:"startedAt"`
}

func (s *Session) Snapshot() Snapshot {
	members := s.Roster.Members()
	work := maps.Clone(s.SessionWork)
	for _, m := range members {
		if _, ok := work[m]; !ok {
			work[m] = 0
		}
	}
	return Snapshot{
		ID:               s.ID,
		OwnerID:          s.OwnerID,
		SpaceID:          s.SpaceID,
		Config:           s.Config,
		Phase:            s.Phase,
		State:            s.State,
		SessionCount:     s.SessionCount,
		RemainingSeconds: s.RemainingSeconds,
		TotalWork:        lo.Sum(lo.Values(s.SessionWork)),
		Members:          members,
		SessionWork:      work,
		StartedAt:        s.StartedAt,
	}
}
