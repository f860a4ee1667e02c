//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"pomo-lab/domain"
	"pomo-lab/domain/event"
)

type ISupervisor interface {
	Start(ctx context.Context, worker Worker)
	Wait()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// StatsStore is the durable per-user accumulation of credited work.
// Upsert must be safe for concurrent calls on different users.
type StatsStore interface {
	Upsert(ctx context.Context, userID string, minutes int) (domain.StatsRecord, error)
	Get(ctx context.Context, userID string) (domain.StatsRecord, error)
	Reset(ctx context.Context, userID string) (domain.StatsRecord, error)
}

// PresencePort answers who currently occupies a shared space.
type PresencePort interface {
	IsPresent(ctx context.Context, spaceID, userID string) bool
	CurrentOccupants(ctx context.Context, spaceID string) []string
}

// NotificationSink receives session notifications. Errors are logged by the
// caller and never stop a session.
type NotificationSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

// SessionHandle is the registry's view of a running session.
type SessionHandle interface {
	OwnerID() string
	Roster() *domain.Roster
	Signal(s domain.Signal)
	Snapshot() domain.Snapshot
}

type ISessionRegistry interface {
	Register(h SessionHandle) error
	Get(ownerID string) (SessionHandle, error)
	Stop(ownerID string) error
	FindByParticipant(userID string) (SessionHandle, bool)
	Remove(ownerID string)
	All() []SessionHandle
}
