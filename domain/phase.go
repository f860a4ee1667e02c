package domain

type BreakKind string

const (
	NoBreak    BreakKind = ""
	ShortBreak BreakKind = "short"
	LongBreak  BreakKind = "long"
)

type PhaseKind string

const (
	Working PhaseKind = "working"
	OnBreak PhaseKind = "on_break"
)

// Phase is the interval currently counting down. Break is only set when
// Kind is OnBreak.
type Phase struct {
	Kind  PhaseKind `json:"kind"`
	Break BreakKind `json:"break,omitempty"`
}

func WorkPhase() Phase {
	return Phase{Kind: Working}
}

func BreakPhase(kind BreakKind) Phase {
	return Phase{Kind: OnBreak, Break: kind}
}

func (p Phase) IsWork() bool { return p.Kind == Working }

func (p Phase) String() string {
	if p.Kind == OnBreak {
		return string(p.Break) + "_break"
	}
	return string(p.Kind)
}

// State is the lifecycle of a session. Paused decorates the current phase,
// the two ended states are terminal.
type State string

const (
	Running             State = "running"
	Paused              State = "paused"
	StoppedByUser       State = "stopped_by_user"
	EndedByPresenceLoss State = "ended_by_presence_loss"
)

func (s State) Terminal() bool {
	return s == StoppedByUser || s == EndedByPresenceLoss
}
