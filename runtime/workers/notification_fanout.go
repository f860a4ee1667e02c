package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pomo-lab/contract"
	"pomo-lab/domain/event"
)

var _ contract.Worker = (*NotificationFanout)(nil)

// Observer is told about every notification leaving the fanout.
type Observer interface {
	Observe(n event.Notification)
	IncrSinkErrors()
}

// NotificationFanout broadcasts session notifications to in-process sinks.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. Sinks are called in registration order, each bounded
// by sinkTimeout, and a failing sink never affects the session loops.
type NotificationFanout struct {
	log           *slog.Logger
	notifications <-chan event.Notification
	sinks         []contract.NotificationSink
	observer      Observer
	sinkTimeout   time.Duration
}

func NewNotificationFanout(log *slog.Logger, notifications <-chan event.Notification,
	observer Observer, sinkTimeout time.Duration, sinks ...contract.NotificationSink) *NotificationFanout {
	return &NotificationFanout{
		log:           log,
		notifications: notifications,
		sinks:         sinks,
		observer:      observer,
		sinkTimeout:   sinkTimeout,
	}
}

func (w *NotificationFanout) Run(ctx context.Context) error {
	for {
		select {
		case n, ok := <-w.notifications:
			if !ok {
				return nil
			}
			w.Fanout(ctx, n)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping notification fanout")
			return nil
		}
	}
}

// Fanout One sink call for each notification
func (w *NotificationFanout) Fanout(ctx context.Context, n event.Notification) {
	if w.observer != nil {
		w.observer.Observe(n)
	}
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		err := sink.Consume(sinkCtx, n)
		cancel()
		if err != nil {
			w.log.Warn("Sink failed to consume notification",
				"sink", fmt.Sprintf("%T", sink), "kind", n.Kind, "error", err)
			if w.observer != nil {
				w.observer.IncrSinkErrors()
			}
		}
	}
}
