package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
)

// mergeStore caches the last known authoritative state per record. Rows
// are overwritten wholesale from sync round results; local optimistic
// writes land here too so the UI reads one consistent view.
type mergeStore struct {
	*LocalDB
	logger *logger.Logger
}

func NewMergeStore(db *LocalDB, log *logger.Logger) MergeStore {
	return &mergeStore{
		LocalDB: db,
		logger:  log,
	}
}

func (m *mergeStore) Upsert(ctx context.Context, records ...models.Record) error {
	if len(records) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := m.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge tx: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		payload := record.Payload
		if len(payload) == 0 {
			payload = []byte(`{}`)
		}

		var updatedAt any
		if !record.UpdatedAt.IsZero() {
			updatedAt = record.UpdatedAt
		}

		_, err = tx.ExecContext(ctx, upsertLocalRecord,
			string(record.EntityType),
			record.SyncID,
			record.ID,
			string(payload),
			boolToInt(record.Deleted),
			updatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "mergeStore.Upsert").
				Str("sync_id", record.SyncID).
				Str("entity_type", string(record.EntityType)).
				Msg("failed to upsert local record")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit merge tx: %w", err)
	}

	return nil
}

func (m *mergeStore) Get(ctx context.Context, entityType models.EntityType, syncID string) (models.Record, error) {
	record, err := scanLocalRecord(m.QueryRowContext(ctx, getLocalRecord, string(entityType), syncID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (m *mergeStore) List(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := m.QueryContext(ctx, listLocalRecords, string(entityType))
	if err != nil {
		log.Err(err).
			Str("func", "mergeStore.List").
			Str("entity_type", string(entityType)).
			Msg("failed to list local records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		record, scanErr := scanLocalRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (m *mergeStore) MarkDeleted(ctx context.Context, entityType models.EntityType, syncID string) error {
	if _, err := m.ExecContext(ctx, markLocalRecordDeleted, string(entityType), syncID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanLocalRecord(row rowScanner) (models.Record, error) {
	var record models.Record
	var entityType string
	var payload []byte
	var deleted int
	var updatedAt sql.NullTime

	err := row.Scan(
		&entityType,
		&record.SyncID,
		&record.ID,
		&payload,
		&deleted,
		&updatedAt,
	)
	if err != nil {
		return models.Record{}, err
	}

	record.EntityType = models.EntityType(entityType)
	record.Payload = payload
	record.Deleted = deleted != 0
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time
	}

	return record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
