package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
)

// psql builds every query with Postgres-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entityColumns = "id, owner_id, sync_id, payload, deleted, created_at, updated_at"

// entityRepository is the Postgres-backed implementation of [EntityStore].
// One instance exists per entity table; all four tables share the same
// shape (sync envelope columns plus an opaque JSONB payload), which is
// what lets the reconciliation engine stay generic.
type entityRepository struct {
	*DB
	entityType models.EntityType
	table      string
	logger     *logger.Logger
}

// NewEntityRepository constructs an [EntityStore] for the given entity
// type. The table name is the entity type itself; all registered types
// are created by the schema migration.
func NewEntityRepository(db *DB, entityType models.EntityType, log *logger.Logger) EntityStore {
	return &entityRepository{
		DB:         db,
		entityType: entityType,
		table:      string(entityType),
		logger:     log,
	}
}

func (r *entityRepository) Type() models.EntityType {
	return r.entityType
}

func (r *entityRepository) FindBySyncID(ctx context.Context, ownerID int64, syncID string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(entityColumns).
		From(r.table).
		Where(sq.Eq{"owner_id": ownerID, "sync_id": syncID}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.scanRecord(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "entityRepository.FindBySyncID").
			Int64("owner_id", ownerID).
			Str("sync_id", syncID).
			Msg("failed to look record up by sync id")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *entityRepository) Create(ctx context.Context, ownerID int64, syncID string, payload json.RawMessage) (models.Record, error) {
	log := logger.FromContext(ctx)

	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	query, args, err := psql.
		Insert(r.table).
		Columns("owner_id", "sync_id", "payload").
		Values(ownerID, syncID, string(payload)).
		Suffix("RETURNING " + entityColumns).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.scanRecord(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the create race: another device or a concurrent retry
			// persisted this sync id first.
			return models.Record{}, ErrDuplicateSyncID
		}
		log.Err(err).
			Str("func", "entityRepository.Create").
			Int64("owner_id", ownerID).
			Str("sync_id", syncID).
			Msg("failed to insert record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *entityRepository) ApplyUpdate(ctx context.Context, record models.Record, delta json.RawMessage) (models.Record, error) {
	log := logger.FromContext(ctx)

	if record.Deleted {
		return models.Record{}, ErrRecordTombstoned
	}
	if len(delta) == 0 {
		delta = json.RawMessage(`{}`)
	}

	// JSONB concatenation merges the delta into the stored payload,
	// latest value winning per key. GREATEST keeps updated_at
	// non-decreasing even under clock adjustments.
	query, args, err := psql.
		Update(r.table).
		Set("payload", sq.Expr("payload || ?::jsonb", string(delta))).
		Set("updated_at", sq.Expr("GREATEST(NOW(), updated_at)")).
		Where(sq.Eq{"id": record.ID, "deleted": false}).
		Suffix("RETURNING " + entityColumns).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.scanRecord(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The row was tombstoned between the engine's read and this
			// write; the tombstoned payload stays frozen.
			return models.Record{}, ErrRecordTombstoned
		}
		log.Err(err).
			Str("func", "entityRepository.ApplyUpdate").
			Int64("record_id", record.ID).
			Str("sync_id", record.SyncID).
			Msg("failed to apply payload delta")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *entityRepository) Tombstone(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if record.Deleted {
		// Re-deleting is an idempotent replay; updated_at stays put so the
		// tombstone is not resent to devices that already saw it.
		return record, nil
	}

	query, args, err := psql.
		Update(r.table).
		Set("deleted", true).
		Set("updated_at", sq.Expr("GREATEST(NOW(), updated_at)")).
		Where(sq.Eq{"id": record.ID}).
		Suffix("RETURNING " + entityColumns).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.scanRecord(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "entityRepository.Tombstone").
			Int64("record_id", record.ID).
			Str("sync_id", record.SyncID).
			Msg("failed to tombstone record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}

func (r *entityRepository) ChangedSince(ctx context.Context, ownerID int64, since *time.Time) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(entityColumns).
		From(r.table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at", "id")

	if since != nil {
		builder = builder.Where(sq.Gt{"updated_at": *since})
	} else {
		// First sync: the device has nothing to delete, so tombstones are
		// not worth sending.
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ChangedSince").
			Int64("owner_id", ownerID).
			Str("entity_type", string(r.entityType)).
			Msg("failed to execute change-since query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		record, scanErr := r.scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.ChangedSince").
				Int64("owner_id", ownerID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.ChangedSince").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *entityRepository) scanRecord(row rowScanner) (models.Record, error) {
	var record models.Record
	var payload []byte

	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&record.SyncID,
		&payload,
		&record.Deleted,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return models.Record{}, err
	}

	record.EntityType = r.entityType
	record.Payload = payload

	return record, nil
}
