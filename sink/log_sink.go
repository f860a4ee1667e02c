package sink

import (
	"context"
	"log/slog"

	"pomo-lab/contract"
	"pomo-lab/domain/event"
)

var _ contract.NotificationSink = (*LogSink)(nil)

// LogSink writes every notification as a structured log line.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(ctx context.Context, n event.Notification) error {
	attrs := []any{
		"owner", n.OwnerID,
		"session", n.SessionID.String(),
		"phase", n.Phase.String(),
		"count", n.SessionCount,
	}
	switch n.Kind {
	case event.Progress:
		attrs = append(attrs, "remaining_minutes", n.RemainingMinutes)
	case event.PhaseStarted, event.SessionStarted:
		attrs = append(attrs, "minutes", n.PhaseMinutes, "members", n.Members)
	case event.WorkCompleted:
		attrs = append(attrs, "credited", n.Credited)
	case event.SessionStopped, event.PresenceLost:
		attrs = append(attrs, "work", n.SessionWork)
	case event.ParticipantAdded, event.ParticipantLeft:
		attrs = append(attrs, "user", n.UserID)
	case event.CreditFailed:
		s.log.WarnContext(ctx, string(n.Kind), append(attrs, "user", n.UserID, "error", n.Error)...)
		return nil
	}
	s.log.InfoContext(ctx, string(n.Kind), attrs...)
	return nil
}
