package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avolkov/nutrisync/internal/logger"
)

// syncStateStorage keeps the installation's device id and last-sync
// watermark in the single client_sync_state row.
type syncStateStorage struct {
	*LocalDB
	logger *logger.Logger
}

func NewSyncStateStorage(db *LocalDB, log *logger.Logger) SyncStateStorage {
	return &syncStateStorage{
		LocalDB: db,
		logger:  log,
	}
}

func (s *syncStateStorage) EnsureDevice(ctx context.Context, fallback string) (string, error) {
	log := logger.FromContext(ctx)

	var deviceID string
	var lastSync sql.NullTime

	err := s.QueryRowContext(ctx, getSyncState).Scan(&deviceID, &lastSync)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err = s.ExecContext(ctx, initSyncState, fallback); err != nil {
			log.Err(err).
				Str("func", "syncStateStorage.EnsureDevice").
				Msg("failed to initialize sync state row")
			return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return fallback, nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deviceID, nil
}

func (s *syncStateStorage) LastSync(ctx context.Context) (*time.Time, error) {
	var deviceID string
	var lastSync sql.NullTime

	err := s.QueryRowContext(ctx, getSyncState).Scan(&deviceID, &lastSync)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !lastSync.Valid {
		return nil, nil
	}

	at := lastSync.Time
	return &at, nil
}

func (s *syncStateStorage) SetLastSync(ctx context.Context, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := s.ExecContext(ctx, setSyncWatermark, at)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateStorage.SetLastSync").
			Msg("failed to store sync watermark")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrWatermarkNotFound
	}

	return nil
}
