package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"pomo-lab/contract"
)

var _ contract.Worker = (*ChannelCapacityWorker)(nil)

type NamedChannel struct {
	Name    string
	Channel any
}

// CapacityRecorder receives channel occupancy samples.
type CapacityRecorder interface {
	RecordChannel(name string, length, capacity int)
}

// ChannelCapacityWorker periodically samples the length and capacity of the
// given channels. Reading len and cap never blocks the goroutines using them.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	recorder       CapacityRecorder
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	recorder CapacityRecorder, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		recorder:       recorder,
		metricInterval: metricInterval,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

func (w *ChannelCapacityWorker) Sample() {
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		length, capacity := v.Len(), v.Cap()
		if capacity > 0 && length*10 >= capacity*8 {
			w.log.Warn("Channel nearly full", "name", nc.Name, "length", length, "capacity", capacity)
		}
		w.recorder.RecordChannel(nc.Name, length, capacity)
	}
}
