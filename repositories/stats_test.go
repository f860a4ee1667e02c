package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pomo-lab/domain"
	"pomo-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStatsRepository_Upsert_Accumulates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewStatsRepository(openBadger(t), slog.Default())

	// Given no record exists
	_, err := repository.Get(ctx, "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)
	req.ErrorIs(err, errors.ErrNotFound)

	// When alice is credited twice
	_, err = repository.Upsert(ctx, "alice", 25)
	req.NoError(err)
	record, err := repository.Upsert(ctx, "alice", 25)
	req.NoError(err)

	// Then minutes and sessions add up
	expected := domain.StatsRecord{UserID: "alice", TotalMinutes: 50, TotalSessions: 2}
	req.Equal(expected, record)

	fetched, err := repository.Get(ctx, "alice")
	req.NoError(err)
	req.Equal(expected, fetched)
}

func TestStatsRepository_Reset_Returns_Previous_Record(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewStatsRepository(openBadger(t), slog.Default())

	_, err := repository.Upsert(ctx, "alice", 25)
	req.NoError(err)
	_, err = repository.Upsert(ctx, "alice", 25)
	req.NoError(err)

	// When the record is reset
	record, err := repository.Reset(ctx, "alice")

	// Then the pre-reset record is returned and nothing is left
	req.NoError(err)
	req.Equal(domain.StatsRecord{UserID: "alice", TotalMinutes: 50, TotalSessions: 2}, record)

	_, err = repository.Get(ctx, "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)

	// And a second reset has nothing to delete
	_, err = repository.Reset(ctx, "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)
}

func TestStatsRepository_Concurrent_Upserts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewStatsRepository(openBadger(t), slog.Default())

	users := []string{"alice", "bob", "clara"}
	perUser := 10

	var wg sync.WaitGroup
	for _, user := range users {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(user string) {
				defer wg.Done()
				_, err := repository.Upsert(ctx, user, 5)
				req.NoError(err)
			}(user)
		}
	}
	wg.Wait()

	for _, user := range users {
		record, err := repository.Get(ctx, user)
		req.NoError(err)
		req.Equal(int64(perUser*5), record.TotalMinutes, fmt.Sprintf("minutes of %s", user))
		req.Equal(int64(perUser), record.TotalSessions)
	}
}

func TestStatsRepository_Upsert_Honors_Canceled_Context(t *testing.T) {
	req := require.New(t)
	repository := NewStatsRepository(openBadger(t), slog.Default())

	// Given a context that is already canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When an upsert is attempted
	_, err := repository.Upsert(ctx, "alice", 25)

	// Then it fails as a storage failure and nothing is written
	req.ErrorIs(err, errors.ErrStorageFailure)
	_, err = repository.Get(context.Background(), "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)
}

func TestUpsertBackoff_Is_Capped(t *testing.T) {
	req := require.New(t)

	req.Equal(retryBackoff, upsertBackoff(0))
	req.Equal(2*retryBackoff, upsertBackoff(1))
	req.Equal(maxRetryBackoff, upsertBackoff(maxUpsertRetry-1))

	// Then the worst case of a fully contended upsert stays well under a second
	var total time.Duration
	for attempt := 0; attempt < maxUpsertRetry; attempt++ {
		total += upsertBackoff(attempt)
	}
	req.Less(total, 500*time.Millisecond)
}

func TestDecodeRecord_Skips_Unknown_Fields(t *testing.T) {
	req := require.New(t)

	encoded := encodeRecord(domain.StatsRecord{TotalMinutes: 125, TotalSessions: 5})
	// field 3, varint 7
	encoded = append(encoded, 0x18, 0x07)

	record, err := DecodeRecord(encoded)
	req.NoError(err)
	req.Equal(int64(125), record.TotalMinutes)
	req.Equal(int64(5), record.TotalSessions)

	_, err = DecodeRecord([]byte{0x08})
	req.Error(err)
}
