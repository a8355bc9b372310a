// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

// Package store contains the persistence layer of nutrisync: the generic
// authoritative entity stores and the watermark repository on the server
// side, and the SQLite-backed mutation queue, merge store and sync state
// on the device side.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avolkov/nutrisync/models"
)

// EntityStore is the syncable entity contract. One implementation exists
// per registered entity type; the reconciliation engine and the
// change-since query are written once against this seam.
//
// Every method is individually atomic (single-record read-modify-write);
// no cross-record transaction wraps a sync batch.
type EntityStore interface {
	// Type names the entity family the store serves.
	Type() models.EntityType

	// FindBySyncID looks a record up by its idempotency key.
	// Returns ErrRecordNotFound when no row matches.
	FindBySyncID(ctx context.Context, ownerID int64, syncID string) (models.Record, error)

	// Create persists a new record. The payload must already be validated.
	// When another request has persisted the same (owner, syncID) pair
	// first, Create returns ErrDuplicateSyncID and the caller re-reads.
	Create(ctx context.Context, ownerID int64, syncID string, payload json.RawMessage) (models.Record, error)

	// ApplyUpdate merges the payload delta into the record's stored
	// payload and bumps updated_at. Returns ErrRecordTombstoned when the
	// record is already deleted.
	ApplyUpdate(ctx context.Context, record models.Record, delta json.RawMessage) (models.Record, error)

	// Tombstone soft-deletes the record, freezing its payload and bumping
	// updated_at. Tombstoning an already-deleted record is a no-op that
	// returns the record unchanged.
	Tombstone(ctx context.Context, record models.Record) (models.Record, error)

	// ChangedSince returns every record of the owner whose updated_at is
	// strictly greater than since, tombstones included. A nil since means
	// first sync: the full live set is returned and tombstones are
	// omitted, because the device has nothing to remove yet.
	ChangedSince(ctx context.Context, ownerID int64, since *time.Time) ([]models.Record, error)
}

// WatermarkStorage persists the per (owner, device) last-successful-sync
// timestamp.
type WatermarkStorage interface {
	// Get returns the device's watermark or ErrWatermarkNotFound on first
	// sync.
	Get(ctx context.Context, ownerID int64, deviceID string) (models.DeviceWatermark, error)

	// Upsert overwrites the single authoritative watermark row.
	Upsert(ctx context.Context, ownerID int64, deviceID string, lastSyncAt time.Time) error

	// Now reads the database clock. Round timestamps come from here so
	// the watermark and record updated_at values share one clock and an
	// app-server clock running ahead cannot hide concurrent writes from
	// the next change-since query.
	Now(ctx context.Context) (time.Time, error)
}

// Storages aggregates the server-side repositories.
type Storages struct {
	Entities   map[models.EntityType]EntityStore
	Watermarks WatermarkStorage
}
