package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
)

// watermarkRepository persists device sync watermarks in the
// sync_watermarks table, one row per (owner_id, device_id).
type watermarkRepository struct {
	*DB
	logger *logger.Logger
}

func NewWatermarkRepository(db *DB, log *logger.Logger) WatermarkStorage {
	return &watermarkRepository{
		DB:     db,
		logger: log,
	}
}

func (w *watermarkRepository) Get(ctx context.Context, ownerID int64, deviceID string) (models.DeviceWatermark, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("owner_id", "device_id", "last_sync_at").
		From("sync_watermarks").
		Where(sq.Eq{"owner_id": ownerID, "device_id": deviceID}).
		ToSql()
	if err != nil {
		return models.DeviceWatermark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var mark models.DeviceWatermark
	err = w.QueryRowContext(ctx, query, args...).
		Scan(&mark.OwnerID, &mark.DeviceID, &mark.LastSyncAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DeviceWatermark{}, ErrWatermarkNotFound
		}
		log.Err(err).
			Str("func", "watermarkRepository.Get").
			Int64("owner_id", ownerID).
			Str("device_id", deviceID).
			Msg("failed to read device watermark")
		return models.DeviceWatermark{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mark, nil
}

func (w *watermarkRepository) Now(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	var now time.Time
	if err := w.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.Now").
			Msg("failed to read database clock")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return now.UTC(), nil
}

func (w *watermarkRepository) Upsert(ctx context.Context, ownerID int64, deviceID string, lastSyncAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("sync_watermarks").
		Columns("owner_id", "device_id", "last_sync_at").
		Values(ownerID, deviceID, lastSyncAt).
		Suffix("ON CONFLICT (owner_id, device_id) DO UPDATE SET last_sync_at = EXCLUDED.last_sync_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = w.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.Upsert").
			Int64("owner_id", ownerID).
			Str("device_id", deviceID).
			Msg("failed to upsert device watermark")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
