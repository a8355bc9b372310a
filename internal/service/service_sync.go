package service

import (
	"context"
	"errors"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/store"
	"github.com/avolkov/nutrisync/internal/validators"
	"github.com/avolkov/nutrisync/models"
)

// syncService is the reconciliation engine. It is written once against
// the [store.EntityStore] contract and serves every registered entity
// type.
//
// Conflict policy: last write wins by arrival order. The engine never
// compares client clocks; within a batch mutations apply in client order,
// and across concurrent rounds from two devices the later database write
// silently overwrites. Each mutation is individually atomic; the batch as
// a whole is deliberately not wrapped in a transaction, so a failure on
// mutation #5 leaves #1–#4 applied.
type syncService struct {
	entities   map[models.EntityType]store.EntityStore
	watermarks store.WatermarkStorage

	logger *logger.Logger
}

// NewSyncService constructs the engine over the given repositories.
func NewSyncService(storages *store.Storages, log *logger.Logger) SyncService {
	return &syncService{
		entities:   storages.Entities,
		watermarks: storages.Watermarks,
		logger:     log,
	}
}

func (s *syncService) SyncRound(ctx context.Context, ownerID int64, request models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if ownerID <= 0 {
		return models.SyncResponse{}, ErrNoOwnerID
	}
	if request.DeviceID == "" {
		return models.SyncResponse{}, ErrNoDeviceID
	}

	processed := make(map[models.EntityType]models.ProcessedSet, len(request.Changes))
	applied := make(map[models.EntityType]map[string]struct{}, len(request.Changes))

	// Registered types first, in stable order; client-supplied order is
	// preserved within each type.
	for _, entityType := range models.EntityTypes {
		items := request.Changes[entityType]
		if len(items) == 0 {
			continue
		}

		set, appliedKeys := s.applyBatch(ctx, ownerID, entityType, items)
		processed[entityType] = set
		applied[entityType] = appliedKeys
	}

	// Change sets for entity families the server does not serve are
	// reported per item, not as a request-level failure.
	for entityType, items := range request.Changes {
		if entityType.Valid() {
			continue
		}
		set := processed[entityType]
		for _, item := range items {
			set.Failed = append(set.Failed, models.ItemError{
				SyncID: item.SyncID,
				Reason: ErrUnknownEntityType.Error(),
			})
		}
		processed[entityType] = set
	}

	// The round timestamp comes from the database clock, not the app
	// server's. updated_at is assigned by Postgres NOW(); advancing the
	// watermark past the DB clock would let a record written by another
	// device slip below the watermark and never download. Read before the
	// change-since queries: anything they miss then sits strictly above
	// the watermark and surfaces next round.
	syncTimestamp, err := s.watermarks.Now(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.SyncRound").
			Int64("owner_id", ownerID).
			Msg("failed to read database clock")
		return models.SyncResponse{}, err
	}

	serverChanges := make(map[models.EntityType][]models.Record, len(s.entities))
	for _, entityType := range models.EntityTypes {
		entityStore := s.entities[entityType]
		changed, err := entityStore.ChangedSince(ctx, ownerID, request.LastSyncTimestamp)
		if err != nil {
			log.Err(err).
				Str("func", "syncService.SyncRound").
				Int64("owner_id", ownerID).
				Str("entity_type", string(entityType)).
				Msg("change-since query failed")
			return models.SyncResponse{}, err
		}

		// Records this device just submitted are already reflected in
		// processed_changes; echoing them back would make every round
		// re-download its own writes.
		filtered := changed[:0]
		for _, record := range changed {
			if _, ownWrite := applied[entityType][record.SyncID]; ownWrite {
				continue
			}
			filtered = append(filtered, record)
		}
		if len(filtered) > 0 {
			serverChanges[entityType] = filtered
		}
	}

	// Source parity: the watermark advances even when individual
	// mutations failed. Failed mutations stay unacknowledged client-side
	// and are retried, which is what makes this safe.
	if err := s.watermarks.Upsert(ctx, ownerID, request.DeviceID, syncTimestamp); err != nil {
		log.Err(err).
			Str("func", "syncService.SyncRound").
			Int64("owner_id", ownerID).
			Str("device_id", request.DeviceID).
			Msg("failed to advance device watermark")
		return models.SyncResponse{}, err
	}

	return models.SyncResponse{
		SyncTimestamp:    syncTimestamp,
		ProcessedChanges: processed,
		ServerChanges:    serverChanges,
	}, nil
}

// applyBatch runs the mutation loop for one entity type. The returned
// set reports outcomes; appliedKeys collects the sync ids whose server
// state this round touched or confirmed.
func (s *syncService) applyBatch(ctx context.Context, ownerID int64, entityType models.EntityType, items []models.ChangeItem) (models.ProcessedSet, map[string]struct{}) {
	log := logger.FromContext(ctx)

	entityStore := s.entities[entityType]
	set := models.ProcessedSet{
		Created: []models.Record{},
		Updated: []models.Record{},
		Deleted: []int64{},
	}
	appliedKeys := make(map[string]struct{}, len(items))

	for _, item := range items {
		record, err := entityStore.FindBySyncID(ctx, ownerID, item.SyncID)

		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			if item.IsDeleted {
				// Delete for a key the server has never seen: the record
				// is already absent, so this is a successful no-op, not an
				// error. Keeps out-of-order delivery harmless.
				appliedKeys[item.SyncID] = struct{}{}
				continue
			}
			s.applyCreate(ctx, entityStore, ownerID, item, &set, appliedKeys)

		case err != nil:
			// Storage failure on one lookup skips that mutation only.
			log.Err(err).
				Str("func", "syncService.applyBatch").
				Int64("owner_id", ownerID).
				Str("sync_id", item.SyncID).
				Msg("record lookup failed, skipping mutation")
			set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: err.Error()})

		case item.IsDeleted:
			tombstoned, terr := entityStore.Tombstone(ctx, record)
			if terr != nil {
				log.Err(terr).
					Str("func", "syncService.applyBatch").
					Str("sync_id", item.SyncID).
					Msg("tombstone failed, skipping mutation")
				set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: terr.Error()})
				continue
			}
			set.Deleted = append(set.Deleted, tombstoned.ID)
			appliedKeys[item.SyncID] = struct{}{}

		case record.Deleted:
			// The tombstoned payload is frozen; late edits are rejected
			// per item so the device can learn about the tombstone via
			// server_changes instead of silently resurrecting it.
			set.Failed = append(set.Failed, models.ItemError{
				SyncID: item.SyncID,
				Reason: store.ErrRecordTombstoned.Error(),
			})

		default:
			updated, uerr := entityStore.ApplyUpdate(ctx, record, item.Payload)
			if uerr != nil {
				log.Err(uerr).
					Str("func", "syncService.applyBatch").
					Str("sync_id", item.SyncID).
					Msg("update failed, skipping mutation")
				set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: uerr.Error()})
				continue
			}
			set.Updated = append(set.Updated, updated)
			appliedKeys[item.SyncID] = struct{}{}
		}
	}

	return set, appliedKeys
}

func (s *syncService) applyCreate(ctx context.Context, entityStore store.EntityStore, ownerID int64, item models.ChangeItem, set *models.ProcessedSet, appliedKeys map[string]struct{}) {
	log := logger.FromContext(ctx)

	validate, err := validators.ForType(entityStore.Type())
	if err != nil {
		set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: err.Error()})
		return
	}
	if verr := validate(item.Payload); verr != nil {
		set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: verr.Error()})
		return
	}

	record, err := entityStore.Create(ctx, ownerID, item.SyncID, item.Payload)
	if errors.Is(err, store.ErrDuplicateSyncID) {
		// Lost the create race to a concurrent round; the row now exists,
		// so this mutation is an already-applied replay.
		existing, ferr := entityStore.FindBySyncID(ctx, ownerID, item.SyncID)
		if ferr != nil {
			set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: ferr.Error()})
			return
		}
		set.Created = append(set.Created, existing)
		appliedKeys[item.SyncID] = struct{}{}
		return
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncService.applyCreate").
			Int64("owner_id", ownerID).
			Str("sync_id", item.SyncID).
			Msg("create failed, skipping mutation")
		set.Failed = append(set.Failed, models.ItemError{SyncID: item.SyncID, Reason: err.Error()})
		return
	}

	set.Created = append(set.Created, record)
	appliedKeys[item.SyncID] = struct{}{}
}

func (s *syncService) Status(ctx context.Context, ownerID int64, deviceID string) (models.SyncStatus, error) {
	if deviceID == "" {
		return models.SyncStatus{}, ErrNoDeviceID
	}

	mark, err := s.watermarks.Get(ctx, ownerID, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrWatermarkNotFound) {
			return models.SyncStatus{DeviceID: deviceID}, nil
		}
		return models.SyncStatus{}, err
	}

	at := mark.LastSyncAt
	return models.SyncStatus{DeviceID: deviceID, LastSyncTimestamp: &at}, nil
}
