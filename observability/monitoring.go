package observability

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"pomo-lab/domain/event"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats aggregates counters and process metrics for the debug endpoint.
type MonitoringStats struct {
	// --- SESSION METRICS ---
	SessionsStarted   uint64 `json:"sessions_started"`
	SessionsStopped   uint64 `json:"sessions_stopped"`
	SessionsLost      uint64 `json:"sessions_presence_lost"`
	WorkCompleted     uint64 `json:"work_phases_completed"`
	Credits           uint64 `json:"credits"`
	CreditFailures    uint64 `json:"credit_failures"`
	SinkErrors        uint64 `json:"sink_errors"`
	ActiveSessions    int    `json:"active_sessions"`
	NotificationsSeen uint64 `json:"notifications_seen"`

	Channels map[string]ChannelUsage `json:"channels,omitempty"`

	// --- SYSTEM METRICS ---
	Pid        int32     `json:"pid"`
	PidStatus  string    `json:"pid_status"`
	CpuPercent float64   `json:"cpu_percent"`
	RssBytes   uint64    `json:"rss_bytes"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	Goroutines int       `json:"goroutines"`
	Uptime     string    `json:"uptime"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ChannelUsage struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
}

// MonitoringManager keeps real-time telemetry of the timer service.
// Counters are fed by the notification fanout; process metrics are refreshed
// by Run on every interval.
type MonitoringManager struct {
	log            *slog.Logger
	mu             sync.RWMutex
	latestStats    MonitoringStats
	interval       time.Duration
	startedAt      time.Time
	activeSessions func() int
	channels       map[string]ChannelUsage

	sessionsStarted   uint64
	sessionsStopped   uint64
	sessionsLost      uint64
	workCompleted     uint64
	credits           uint64
	creditFailures    uint64
	sinkErrors        uint64
	notificationsSeen uint64
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration, activeSessions func() int) *MonitoringManager {
	return &MonitoringManager{
		log:            log,
		interval:       interval,
		startedAt:      time.Now(),
		activeSessions: activeSessions,
		channels:       make(map[string]ChannelUsage),
	}
}

// Observe updates counters from one notification.
func (mm *MonitoringManager) Observe(n event.Notification) {
	atomic.AddUint64(&mm.notificationsSeen, 1)
	switch n.Kind {
	case event.SessionStarted:
		atomic.AddUint64(&mm.sessionsStarted, 1)
	case event.SessionStopped:
		atomic.AddUint64(&mm.sessionsStopped, 1)
	case event.PresenceLost:
		atomic.AddUint64(&mm.sessionsLost, 1)
	case event.WorkCompleted:
		atomic.AddUint64(&mm.workCompleted, 1)
		atomic.AddUint64(&mm.credits, uint64(len(n.Credited)))
	case event.CreditFailed:
		atomic.AddUint64(&mm.creditFailures, 1)
	}
}

func (mm *MonitoringManager) IncrSinkErrors() {
	atomic.AddUint64(&mm.sinkErrors, 1)
}

func (mm *MonitoringManager) RecordChannel(name string, length, capacity int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.channels[name] = ChannelUsage{Length: length, Capacity: capacity}
}

func (mm *MonitoringManager) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	mm.refresh(p)

	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.refresh(p)
		}
	}
}

func (mm *MonitoringManager) refresh(p *process.Process) {
	stats := MonitoringStats{Pid: p.Pid}
	if memInfo, err := p.MemoryInfo(); err == nil {
		stats.RssBytes = memInfo.RSS
	} else {
		mm.log.Debug("Failed to collect memory info", "error", err)
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CpuPercent = cpu
	}
	if status, err := p.Status(); err == nil {
		stats.PidStatus = status
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC
	stats.Goroutines = runtime.NumGoroutine()
	stats.UpdatedAt = time.Now().UTC()

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()
}

// GetLatest merges the live counters into the last process sample.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	if len(mm.channels) > 0 {
		stats.Channels = maps.Clone(mm.channels)
	}
	mm.mu.RUnlock()

	stats.SessionsStarted = atomic.LoadUint64(&mm.sessionsStarted)
	stats.SessionsStopped = atomic.LoadUint64(&mm.sessionsStopped)
	stats.SessionsLost = atomic.LoadUint64(&mm.sessionsLost)
	stats.WorkCompleted = atomic.LoadUint64(&mm.workCompleted)
	stats.Credits = atomic.LoadUint64(&mm.credits)
	stats.CreditFailures = atomic.LoadUint64(&mm.creditFailures)
	stats.SinkErrors = atomic.LoadUint64(&mm.sinkErrors)
	stats.NotificationsSeen = atomic.LoadUint64(&mm.notificationsSeen)
	if mm.activeSessions != nil {
		stats.ActiveSessions = mm.activeSessions()
	}
	stats.Uptime = time.Since(mm.startedAt).Truncate(time.Second).String()
	return stats
}
