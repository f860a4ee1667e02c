package repositories

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"pomo-lab/domain"
	"pomo-lab/errors"

	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *SQLiteStatsRepository {
	t.Helper()
	repository, err := OpenSQLiteStats(context.Background(), filepath.Join(t.TempDir(), "pomo.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close() })
	return repository
}

func TestSQLiteStatsRepository_Upsert_Then_Reset(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := openSQLite(t)

	// Given alice is credited twice
	_, err := repository.Upsert(ctx, "alice", 25)
	req.NoError(err)
	record, err := repository.Upsert(ctx, "alice", 25)
	req.NoError(err)
	req.Equal(domain.StatsRecord{UserID: "alice", TotalMinutes: 50, TotalSessions: 2}, record)

	// When the record is reset
	reset, err := repository.Reset(ctx, "alice")

	// Then the pre-reset record comes back and the row is gone
	req.NoError(err)
	req.Equal(record, reset)
	_, err = repository.Get(ctx, "alice")
	req.ErrorIs(err, errors.ErrStatsNotFound)
}

func TestSQLiteStatsRepository_Reset_Unknown_User(t *testing.T) {
	req := require.New(t)
	repository := openSQLite(t)

	_, err := repository.Reset(context.Background(), "nobody")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestSQLiteStatsRepository_Concurrent_Upserts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := openSQLite(t)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := []string{"alice", "bob", "clara"}[i%3]
			_, err := repository.Upsert(ctx, user, 25)
			req.NoError(err)
		}(i)
	}
	wg.Wait()

	record, err := repository.Get(ctx, "bob")
	req.NoError(err)
	req.Equal(int64(250), record.TotalMinutes)
	req.Equal(int64(10), record.TotalSessions)
}
