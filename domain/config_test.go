package domain

import (
	"testing"
	"time"

	"pomo-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestSessionConfig_BreakAfter(t *testing.T) {
	req := require.New(t)
	cfg := DefaultSessionConfig()

	var kinds []BreakKind
	for count := 1; count <= 8; count++ {
		kind, minutes := cfg.BreakAfter(count)
		if kind == LongBreak {
			req.Equal(15, minutes)
		} else {
			req.Equal(5, minutes)
		}
		kinds = append(kinds, kind)
	}

	req.Equal([]BreakKind{ShortBreak, ShortBreak, ShortBreak, LongBreak, ShortBreak, ShortBreak, ShortBreak, LongBreak}, kinds)
}

func TestSessionConfig_Interval_Of_One_Is_Always_Long(t *testing.T) {
	req := require.New(t)
	cfg := SessionConfig{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 3, LongBreakInterval: 1}

	for count := 1; count <= 3; count++ {
		kind, minutes := cfg.BreakAfter(count)
		req.Equal(LongBreak, kind)
		req.Equal(3, minutes)
	}
	req.Equal(time.Minute, cfg.WorkDuration())
}

func TestSessionConfig_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(DefaultSessionConfig().Validate())
	req.NoError(SessionConfig{WorkMinutes: 1, LongBreakInterval: 1}.Validate())

	for _, cfg := range []SessionConfig{
		{WorkMinutes: 0, LongBreakInterval: 4},
		{WorkMinutes: 25, LongBreakInterval: 0},
		{WorkMinutes: 25, ShortBreakMinutes: -1, LongBreakInterval: 4},
		{WorkMinutes: 25, LongBreakMinutes: -5, LongBreakInterval: 4},
	} {
		req.ErrorIs(cfg.Validate(), errors.ErrInvalidConfig, "%+v", cfg)
	}
}
