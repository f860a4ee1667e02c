package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pomo-lab/contract"
	"pomo-lab/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor
// Run each worker in a goroutine
// Check panics and errors
// Restart workers automatically
// Shutdown properly when the worker's context is canceled
// Wait for the end of all goroutines via WaitGroup
type Supervisor struct {
	wg           *sync.WaitGroup
	log          *slog.Logger
	restartDelay time.Duration
}

func NewSupervisor(log *slog.Logger, restartDelay time.Duration) *Supervisor {
	if restartDelay <= 0 {
		restartDelay = waitTimeBeforeRestart
	}
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartDelay: restartDelay}
}

// Start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics
// or fails, the supervisor recovers, restarts the worker, and keeps the
// supervision loop alive. A worker returning nil is finished and never
// restarted. A failure in one worker must not stop the supervisor itself.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error("Worker panicked", "name", workerName, "panic", r)
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart !
				s.log.Debug(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				// Context canceled: priority stop.
				// Exit immediately without waiting for the restart delay.
				return
			case <-time.After(s.restartDelay):
			}
		}
	}()
}

// Wait blocks until every supervised goroutine has returned.
func (s *Supervisor) Wait() {
	s.wg.Wait()
}
