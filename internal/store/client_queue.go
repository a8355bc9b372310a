package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
)

// mutationQueue is the SQLite-backed implementation of [MutationQueue].
// One row exists per sync id; Enqueue coalesces instead of appending
// duplicates, so a burst of offline edits to the same record travels as a
// single mutation.
type mutationQueue struct {
	*LocalDB
	logger *logger.Logger
}

func NewMutationQueue(db *LocalDB, log *logger.Logger) MutationQueue {
	return &mutationQueue{
		LocalDB: db,
		logger:  log,
	}
}

func (q *mutationQueue) Enqueue(ctx context.Context, mutation models.PendingMutation) error {
	log := logger.FromContext(ctx)

	switch mutation.Op {
	case models.OpCreate, models.OpUpdate, models.OpDelete:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutationOp, mutation.Op)
	}

	tx, err := q.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin enqueue tx: %w", err)
	}
	defer tx.Rollback()

	existing, err := q.getTx(ctx, tx, mutation.SyncID)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		if err = q.insertTx(ctx, tx, mutation); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = q.coalesceTx(ctx, tx, existing, mutation); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "mutationQueue.Enqueue").
			Str("sync_id", mutation.SyncID).
			Msg("failed to commit enqueue")
		return fmt.Errorf("commit enqueue: %w", err)
	}

	return nil
}

// coalesceTx folds the incoming mutation into the already-queued one.
func (q *mutationQueue) coalesceTx(ctx context.Context, tx *sql.Tx, queued, incoming models.PendingMutation) error {
	if queued.Op == models.OpDelete {
		return fmt.Errorf("%w: %s", ErrMutationAfterDelete, incoming.SyncID)
	}

	switch incoming.Op {
	case models.OpDelete:
		if queued.Op == models.OpCreate {
			// Never-sent optimization: the server has not heard of this
			// record, so creating and deleting it collapse into nothing.
			_, err := tx.ExecContext(ctx, deleteQueuedMutation, queued.SyncID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			return nil
		}

		_, err := tx.ExecContext(ctx, updateQueuedMutation, string(models.OpDelete), "{}", queued.SyncID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil

	case models.OpCreate, models.OpUpdate:
		merged, err := mergePayloads(queued.Payload, incoming.Payload)
		if err != nil {
			return err
		}

		// A queued create stays a create; the merged payload rides along.
		op := queued.Op
		_, err = tx.ExecContext(ctx, updateQueuedMutation, string(op), string(merged), queued.SyncID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutationOp, incoming.Op)
	}
}

// mergePayloads unions two payload deltas, keys of the newer delta
// winning.
func mergePayloads(older, newer json.RawMessage) (json.RawMessage, error) {
	// Raw-message overlay: every key the newer delta names replaces the
	// queued value, zero values included.
	merged := make(map[string]json.RawMessage)

	if len(older) > 0 {
		if err := json.Unmarshal(older, &merged); err != nil {
			return nil, fmt.Errorf("decode queued payload: %w", err)
		}
	}

	overlay := make(map[string]json.RawMessage)
	if len(newer) > 0 {
		if err := json.Unmarshal(newer, &overlay); err != nil {
			return nil, fmt.Errorf("decode incoming payload: %w", err)
		}
	}
	for key, value := range overlay {
		merged[key] = value
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged payload: %w", err)
	}

	return out, nil
}

func (q *mutationQueue) Drain(ctx context.Context) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, drainQueuedMutations)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueue.Drain").
			Msg("failed to read pending mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mutations := make([]models.PendingMutation, 0, 16)
	for rows.Next() {
		mutation, scanErr := scanMutation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		mutations = append(mutations, mutation)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(mutations) > 0 {
		if _, err = q.ExecContext(ctx, bumpAttemptCounters); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return mutations, nil
}

func (q *mutationQueue) Acknowledge(ctx context.Context, syncIDs []string) error {
	if len(syncIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(syncIDs)), ",")
	query := "DELETE FROM pending_mutations WHERE sync_id IN (" + placeholders + ");"

	args := make([]any, 0, len(syncIDs))
	for _, id := range syncIDs {
		args = append(args, id)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "mutationQueue.Acknowledge").
			Int("count", len(syncIDs)).
			Msg("failed to acknowledge mutations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (q *mutationQueue) Len(ctx context.Context) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx, countQueuedMutations).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func (q *mutationQueue) getTx(ctx context.Context, tx *sql.Tx, syncID string) (models.PendingMutation, error) {
	mutation, err := scanMutation(tx.QueryRowContext(ctx, getQueuedMutation, syncID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingMutation{}, ErrRecordNotFound
		}
		return models.PendingMutation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mutation, nil
}

func (q *mutationQueue) insertTx(ctx context.Context, tx *sql.Tx, mutation models.PendingMutation) error {
	payload := mutation.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	enqueuedAt := mutation.EnqueuedAt
	if enqueuedAt.IsZero() {
		enqueuedAt = time.Now().UTC()
	}

	_, err := tx.ExecContext(ctx, insertQueuedMutation,
		mutation.SyncID,
		string(mutation.EntityType),
		string(mutation.Op),
		string(payload),
		enqueuedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func scanMutation(row rowScanner) (models.PendingMutation, error) {
	var mutation models.PendingMutation
	var entityType, op string
	var payload []byte

	err := row.Scan(
		&mutation.SyncID,
		&entityType,
		&op,
		&payload,
		&mutation.Attempted,
		&mutation.EnqueuedAt,
	)
	if err != nil {
		return models.PendingMutation{}, err
	}

	mutation.EntityType = models.EntityType(entityType)
	mutation.Op = models.MutationOp(op)
	mutation.Payload = payload

	return mutation, nil
}
