package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"pomo-lab/contract"
	"pomo-lab/domain"
	apperrors "pomo-lab/errors"

	_ "modernc.org/sqlite"
)

var _ contract.StatsStore = (*SQLiteStatsRepository)(nil)

const createStatsTable = `
CREATE TABLE IF NOT EXISTS stats (
	user_id        TEXT PRIMARY KEY,
	total_minutes  INTEGER NOT NULL DEFAULT 0,
	total_sessions INTEGER NOT NULL DEFAULT 0
)`

// The whole read-modify-write happens inside one statement, so SQLite's
// row lock is the only synchronisation needed.
const upsertStats = `
INSERT INTO stats (user_id, total_minutes, total_sessions)
VALUES (?, ?, 1)
ON CONFLICT(user_id) DO UPDATE SET
	total_minutes = total_minutes + excluded.total_minutes,
	total_sessions = total_sessions + 1
RETURNING total_minutes, total_sessions`

// SQLiteStatsRepository is the file-backed alternative to StatsRepository.
type SQLiteStatsRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLiteStats opens (and creates if needed) the stats database at dsn.
func OpenSQLiteStats(ctx context.Context, dsn string, log *slog.Logger) (*SQLiteStatsRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows a single writer per file.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode = WAL", createStatsTable} {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to prepare SQLite database: %w", err)
		}
	}
	return &SQLiteStatsRepository{db: db, log: log}, nil
}

func (s *SQLiteStatsRepository) Close() error {
	return s.db.Close()
}

func (s *SQLiteStatsRepository) Upsert(ctx context.Context, userID string, minutes int) (domain.StatsRecord, error) {
	record := domain.StatsRecord{UserID: userID}
	err := s.db.QueryRowContext(ctx, upsertStats, userID, minutes).
		Scan(&record.TotalMinutes, &record.TotalSessions)
	if err != nil {
		return domain.StatsRecord{}, fmt.Errorf("%w: upsert %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	return record, nil
}

func (s *SQLiteStatsRepository) Get(ctx context.Context, userID string) (domain.StatsRecord, error) {
	return s.get(ctx, s.db, userID)
}

// Reset reads and deletes the record in one transaction.
func (s *SQLiteStatsRepository) Reset(ctx context.Context, userID string) (domain.StatsRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StatsRecord{}, fmt.Errorf("%w: begin reset: %v", apperrors.ErrStorageFailure, err)
	}
	defer func() { _ = tx.Rollback() }()

	record, err := s.get(ctx, tx, userID)
	if err != nil {
		return domain.StatsRecord{}, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM stats WHERE user_id = ?", userID); err != nil {
		return domain.StatsRecord{}, fmt.Errorf("%w: reset %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	if err = tx.Commit(); err != nil {
		return domain.StatsRecord{}, fmt.Errorf("%w: commit reset %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	return record, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteStatsRepository) get(ctx context.Context, q queryRower, userID string) (domain.StatsRecord, error) {
	record := domain.StatsRecord{UserID: userID}
	err := q.QueryRowContext(ctx,
		"SELECT total_minutes, total_sessions FROM stats WHERE user_id = ?", userID).
		Scan(&record.TotalMinutes, &record.TotalSessions)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.StatsRecord{}, apperrors.ErrStatsNotFound
	case err != nil:
		return domain.StatsRecord{}, fmt.Errorf("%w: get %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	return record, nil
}
