package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"pomo-lab/domain/event"
	"pomo-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingObserver struct {
	observed   []event.Kind
	sinkErrors int
}

func (o *countingObserver) Observe(n event.Notification) { o.observed = append(o.observed, n.Kind) }
func (o *countingObserver) IncrSinkErrors()              { o.sinkErrors++ }

func TestNotificationFanout_Delivers_To_Every_Sink(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink1 := mocks.NewMockNotificationSink(ctrl)
	sink2 := mocks.NewMockNotificationSink(ctrl)
	observer := &countingObserver{}

	fanout := NewNotificationFanout(logs.GetLoggerFromLevel(slog.LevelDebug), nil, observer, time.Second, sink1, sink2)

	n := event.Notification{OwnerID: "owner", Kind: event.WorkCompleted}
	// Given both sinks accept the notification
	sink1.EXPECT().Consume(gomock.Any(), n).Return(nil)
	sink2.EXPECT().Consume(gomock.Any(), n).Return(nil)

	// When it is fanned out
	fanout.Fanout(context.Background(), n)

	// Then it was observed once and nothing failed
	req.Equal([]event.Kind{event.WorkCompleted}, observer.observed)
	req.Zero(observer.sinkErrors)
}

func TestNotificationFanout_Failing_Sink_Does_Not_Block_Others(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockNotificationSink(ctrl)
	healthy := mocks.NewMockNotificationSink(ctrl)
	observer := &countingObserver{}

	sinkTimeout := 20 * time.Millisecond
	fanout := NewNotificationFanout(slog.Default(), nil, observer, sinkTimeout, slow, healthy)

	// Given the first sink waits for its deadline
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.Notification) error {
			<-ctx.Done()
			return ctx.Err()
		})
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)

	start := time.Now()
	fanout.Fanout(context.Background(), event.Notification{Kind: event.Progress})

	req.Less(time.Since(start), time.Second)
	req.Equal(1, observer.sinkErrors)
}

func TestNotificationFanout_Run_Drains_Channel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockNotificationSink(ctrl)
	notifications := make(chan event.Notification, 3)

	delivered := make(chan struct{})
	count := 0
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.Notification) error {
			count++
			if count == 3 {
				close(delivered)
			}
			return fmt.Errorf("ignored")
		}).Times(3)

	fanout := NewNotificationFanout(slog.Default(), notifications, nil, time.Second, sink)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	for i := 0; i < 3; i++ {
		notifications <- event.Notification{Kind: event.Progress}
	}

	select {
	case <-delivered:
	case <-time.After(time.Second):
		req.Fail("Notifications were not delivered in time")
	}
}
