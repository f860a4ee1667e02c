package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pomo-lab/contract"
	"pomo-lab/domain"
	apperrors "pomo-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protowire"
)

var _ contract.StatsStore = (*StatsRepository)(nil)

// StatsPrefix is the key prefix of every stats record.
const StatsPrefix = "stats:"

const (
	maxUpsertRetry  = 32
	retryBackoff    = 2 * time.Millisecond
	maxRetryBackoff = 10 * time.Millisecond
	fieldMinutes    = protowire.Number(1)
	fieldSessions   = protowire.Number(2)
)

// StatsRepository stores one record per user in BadgerDB under "stats:{user_id}".
// Each upsert is a single read-modify-write transaction; Badger's optimistic
// concurrency rejects a conflicting commit on the same key with ErrConflict and
// the upsert is replayed, so concurrent writers only contend per row.
type StatsRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStatsRepository(db *badger.DB, log *slog.Logger) *StatsRepository {
	return &StatsRepository{db: db, log: log}
}

func statsKey(userID string) []byte {
	return []byte(StatsPrefix + userID)
}

func (s *StatsRepository) Upsert(ctx context.Context, userID string, minutes int) (domain.StatsRecord, error) {
	var record domain.StatsRecord
	for attempt := 0; attempt < maxUpsertRetry; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.StatsRecord{}, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
		}
		err := s.db.Update(func(txn *badger.Txn) error {
			current, err := readRecord(txn, userID)
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			record = current.Add(minutes)
			record.UserID = userID
			return txn.Set(statsKey(userID), encodeRecord(record))
		})
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return domain.StatsRecord{}, fmt.Errorf("%w: upsert %s: %v", apperrors.ErrStorageFailure, userID, err)
		}
		s.log.Debug("Stats upsert conflict, retrying", "user", userID, "attempt", attempt+1)
		select {
		case <-ctx.Done():
			return domain.StatsRecord{}, fmt.Errorf("%w: upsert %s: %v", apperrors.ErrStorageFailure, userID, ctx.Err())
		case <-time.After(upsertBackoff(attempt)):
		}
	}
	return domain.StatsRecord{}, fmt.Errorf("%w: upsert %s: too many conflicts", apperrors.ErrStorageFailure, userID)
}

// upsertBackoff grows linearly and is capped at maxRetryBackoff.
func upsertBackoff(attempt int) time.Duration {
	return min(time.Duration(attempt+1)*retryBackoff, maxRetryBackoff)
}

func (s *StatsRepository) Get(_ context.Context, userID string) (domain.StatsRecord, error) {
	var record domain.StatsRecord
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = readRecord(txn, userID)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return domain.StatsRecord{}, apperrors.ErrStatsNotFound
	case err != nil:
		return domain.StatsRecord{}, fmt.Errorf("%w: get %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	return record, nil
}

// Reset deletes the record and returns what it held.
func (s *StatsRepository) Reset(_ context.Context, userID string) (domain.StatsRecord, error) {
	var record domain.StatsRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		if record, err = readRecord(txn, userID); err != nil {
			return err
		}
		return txn.Delete(statsKey(userID))
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return domain.StatsRecord{}, apperrors.ErrStatsNotFound
	case err != nil:
		return domain.StatsRecord{}, fmt.Errorf("%w: reset %s: %v", apperrors.ErrStorageFailure, userID, err)
	}
	return record, nil
}

func readRecord(txn *badger.Txn, userID string) (domain.StatsRecord, error) {
	item, err := txn.Get(statsKey(userID))
	if err != nil {
		return domain.StatsRecord{}, err
	}
	var record domain.StatsRecord
	err = item.Value(func(val []byte) error {
		record, err = DecodeRecord(val)
		return err
	})
	record.UserID = userID
	return record, err
}

// encodeRecord writes the record as a protobuf message
// { int64 total_minutes = 1; int64 total_sessions = 2; }.
func encodeRecord(r domain.StatsRecord) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldMinutes, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.TotalMinutes))
	b = protowire.AppendTag(b, fieldSessions, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.TotalSessions))
	return b
}

// DecodeRecord parses a value written by the repository. Unknown fields are skipped.
func DecodeRecord(b []byte) (domain.StatsRecord, error) {
	var r domain.StatsRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.StatsRecord{}, protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.VarintType || (num != fieldMinutes && num != fieldSessions) {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.StatsRecord{}, protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return domain.StatsRecord{}, protowire.ParseError(n)
		}
		b = b[n:]
		if num == fieldMinutes {
			r.TotalMinutes = int64(v)
		} else {
			r.TotalSessions = int64(v)
		}
	}
	return r, nil
}
