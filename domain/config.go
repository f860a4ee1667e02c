package domain

import (
	"fmt"
	"time"

	"pomo-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SessionConfig is immutable for the lifetime of a session.
type SessionConfig struct {
	WorkMinutes       int `json:"workMinutes" validate:"min=1,max=1440"`
	ShortBreakMinutes int `json:"shortBreakMinutes" validate:"min=0,max=1440"`
	LongBreakMinutes  int `json:"longBreakMinutes" validate:"min=0,max=1440"`
	LongBreakInterval int `json:"longBreakInterval" validate:"min=1,max=100"`
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

func (c SessionConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}

// BreakAfter returns the break that follows the given completed work phase.
// A long break happens every LongBreakInterval completed work phases.
func (c SessionConfig) BreakAfter(sessionCount int) (BreakKind, int) {
	if sessionCount%c.LongBreakInterval == 0 {
		return LongBreak, c.LongBreakMinutes
	}
	return ShortBreak, c.ShortBreakMinutes
}

func (c SessionConfig) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}
