package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrNotFound is wrapped by every "nothing to act on" error so callers can
	// test for the kind without caring which resource was missing.
	ErrNotFound        = fmt.Errorf("not found")
	ErrSessionNotFound = fmt.Errorf("session %w", ErrNotFound)
	ErrStatsNotFound   = fmt.Errorf("stats record %w", ErrNotFound)

	ErrAlreadyActive   = fmt.Errorf("a session is already active for this owner")
	ErrOwnerNotPresent = fmt.Errorf("owner is not present in the shared space")
	ErrInvalidConfig   = fmt.Errorf("invalid session config")

	ErrSelfJoin      = fmt.Errorf("owner cannot join their own session")
	ErrSelfLeave     = fmt.Errorf("owner cannot leave their own session")
	ErrAlreadyJoined = fmt.Errorf("user already joined the session")
	ErrNotJoined     = fmt.Errorf("user has not joined the session")

	ErrStorageFailure = fmt.Errorf("storage failure")
)

var ErrOrchestratorNotStarted = fmt.Errorf("orchestrator is not started")
