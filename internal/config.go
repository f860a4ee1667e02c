package internal

import (
	"fmt"
	"time"

	"pomo-lab/domain"
)

const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config is the server configuration read from the environment.
type Config struct {
	LogLevel               string        `env:"LOG_LEVEL,default=INFO"`
	HTTPHost               string        `env:"HTTP_HOST,default=localhost"`
	HTTPPort               int           `env:"HTTP_PORT,default=8080"`
	GRPCPort               int           `env:"GRPC_PORT,default=9090"`
	DebugPort              int           `env:"DEBUG_PORT,default=0"`
	StatsBackend           string        `env:"STATS_BACKEND,default=badger"`
	BadgerFilepath         string        `env:"BADGER_FILEPATH,default=./data/badger"`
	SQLiteFilepath         string        `env:"SQLITE_FILEPATH,default=./data/pomo.db"`
	TickInterval           time.Duration `env:"TICK_INTERVAL,default=1s"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	NotificationBufferSize int           `env:"NOTIFICATION_BUFFER_SIZE,default=256"`
	SinkTimeout            time.Duration `env:"SINK_TIMEOUT,default=1s"`
	MetricInterval         time.Duration `env:"METRIC_INTERVAL,default=5s"`
	TimelineSize           int           `env:"TIMELINE_SIZE,default=50"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`

	DefaultWorkMinutes       int `env:"DEFAULT_WORK_MINUTES,default=25"`
	DefaultShortBreakMinutes int `env:"DEFAULT_SHORT_BREAK_MINUTES,default=5"`
	DefaultLongBreakMinutes  int `env:"DEFAULT_LONG_BREAK_MINUTES,default=15"`
	DefaultLongBreakInterval int `env:"DEFAULT_LONG_BREAK_INTERVAL,default=4"`
}

// SessionDefaults returns the session config used when a request omits fields.
func (c Config) SessionDefaults() (domain.SessionConfig, error) {
	cfg := domain.SessionConfig{
		WorkMinutes:       c.DefaultWorkMinutes,
		ShortBreakMinutes: c.DefaultShortBreakMinutes,
		LongBreakMinutes:  c.DefaultLongBreakMinutes,
		LongBreakInterval: c.DefaultLongBreakInterval,
	}
	if err := cfg.Validate(); err != nil {
		return domain.SessionConfig{}, fmt.Errorf("DEFAULT_* session settings: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StatsBackend {
	case BackendBadger, BackendSQLite:
	default:
		return fmt.Errorf("STATS_BACKEND must be %q or %q, got %q", BackendBadger, BackendSQLite, c.StatsBackend)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}
	if c.MetricInterval <= 0 {
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	}
	_, err := c.SessionDefaults()
	return err
}
