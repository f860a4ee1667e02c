package domain

// Signal is a control request delivered to a running session.
// Signals are queued and applied by the session loop at the next tick.
type Signal int

const (
	SignalPause Signal = iota + 1
	SignalResume
	SignalStop
)

func (s Signal) String() string {
	switch s {
	case SignalPause:
		return "pause"
	case SignalResume:
		return "resume"
	case SignalStop:
		return "stop"
	default:
		return "unknown"
	}
}
