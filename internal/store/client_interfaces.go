package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/avolkov/nutrisync/models"
)

// MutationQueue is the durable local log of pending mutations. Entries
// survive process restarts and are removed only after the server has
// acknowledged them.
type MutationQueue interface {
	// Enqueue appends a mutation, coalescing it with an already-queued
	// mutation for the same sync id:
	//
	//   - queued create/update + update → payloads merged, latest wins;
	//   - queued create + delete        → both collapse into nothing
	//     (the record was never sent, so the server need not hear of it);
	//   - queued update + delete        → the entry becomes a delete;
	//   - queued delete + anything      → ErrMutationAfterDelete.
	Enqueue(ctx context.Context, mutation models.PendingMutation) error

	// Drain returns the distinct pending mutations in enqueue order and
	// bumps their attempt counters. Entries are not removed; removal
	// happens in Acknowledge.
	Drain(ctx context.Context) ([]models.PendingMutation, error)

	// Acknowledge removes the entries whose sync ids the server confirmed
	// as applied. Partial acknowledgment is supported: everything else
	// stays queued for the next round.
	Acknowledge(ctx context.Context, syncIDs []string) error

	// Len reports the number of queued mutations.
	Len(ctx context.Context) (int, error)
}

// MergeStore is the local cache of the last known authoritative state,
// reconciled from sync round results.
type MergeStore interface {
	// Upsert writes records into the local cache, overwriting any prior
	// state for the same (entity type, sync id).
	Upsert(ctx context.Context, records ...models.Record) error

	// Get returns one cached record. ErrRecordNotFound when absent.
	Get(ctx context.Context, entityType models.EntityType, syncID string) (models.Record, error)

	// List returns the live (non-deleted) cached records of one entity
	// type.
	List(ctx context.Context, entityType models.EntityType) ([]models.Record, error)

	// MarkDeleted flags a cached record as deleted locally.
	MarkDeleted(ctx context.Context, entityType models.EntityType, syncID string) error
}

// SyncStateStorage is the single-row local record of this installation's
// identity and last successful sync watermark.
type SyncStateStorage interface {
	// EnsureDevice returns the stored device id, initializing the state
	// row with fallback when no row exists yet.
	EnsureDevice(ctx context.Context, fallback string) (string, error)

	// LastSync returns the stored watermark, nil before the first
	// successful round.
	LastSync(ctx context.Context) (*time.Time, error)

	// SetLastSync overwrites the watermark.
	SetLastSync(ctx context.Context, at time.Time) error
}

// ClientStorages aggregates the device-side repositories, all backed by
// one SQLite file.
type ClientStorages struct {
	Queue   MutationQueue
	Records MergeStore
	State   SyncStateStorage

	db *LocalDB
}

// Close releases the underlying SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
