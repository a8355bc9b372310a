package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avolkov/nutrisync/models"
)

// RecordService captures user mutations on the device. Every call writes
// the local merge store optimistically and enqueues a pending mutation,
// so edits made offline are indistinguishable from edits made online:
// both travel with the next sync round.
type RecordService interface {
	// Create assigns a fresh idempotency key, caches the record locally
	// and queues a create mutation. The returned record carries no server
	// id yet.
	Create(ctx context.Context, entityType models.EntityType, payload json.RawMessage) (models.Record, error)

	// Update merges a payload delta into the cached record and queues an
	// update mutation (coalesced with any queued one).
	Update(ctx context.Context, entityType models.EntityType, syncID string, delta json.RawMessage) error

	// Delete marks the cached record deleted and queues a delete
	// mutation. A still-unsent create collapses with it into nothing.
	Delete(ctx context.Context, entityType models.EntityType, syncID string) error

	// List returns the live cached records of one entity type.
	List(ctx context.Context, entityType models.EntityType) ([]models.Record, error)
}

// ClientSyncService executes sync rounds against the server.
type ClientSyncService interface {
	// SyncRound drains the queue, exchanges one round with the server,
	// acknowledges applied mutations, merges server changes and advances
	// the local watermark. A transport failure leaves the queue intact;
	// idempotency keys make the full retry safe.
	SyncRound(ctx context.Context) (RoundSummary, error)
}

// RoundSummary reports one round's outcome for logging and UI surfaces.
type RoundSummary struct {
	Submitted    int
	Acknowledged int
	Failed       int
	Downloaded   int
	SyncedAt     time.Time
}

// ClientSyncJob runs SyncRound periodically in the background.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// ClientServices aggregates the device-side services.
type ClientServices struct {
	Records RecordService
	Sync    ClientSyncService
	Job     ClientSyncJob
}
