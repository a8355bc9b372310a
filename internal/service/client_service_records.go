package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avolkov/nutrisync/internal/store"
	"github.com/avolkov/nutrisync/internal/utils"
	"github.com/avolkov/nutrisync/models"
)

type clientRecordService struct {
	queue   store.MutationQueue
	records store.MergeStore
	keys    *utils.UUIDGenerator
}

// NewClientRecordService constructs the device-side mutation capture
// service.
func NewClientRecordService(storages *store.ClientStorages) RecordService {
	return &clientRecordService{
		queue:   storages.Queue,
		records: storages.Records,
		keys:    utils.NewUUIDGenerator(),
	}
}

func (s *clientRecordService) Create(ctx context.Context, entityType models.EntityType, payload json.RawMessage) (models.Record, error) {
	if !entityType.Valid() {
		return models.Record{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}

	record := models.Record{
		SyncID:     s.keys.Generate(),
		EntityType: entityType,
		Payload:    payload,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.records.Upsert(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("cache created record: %w", err)
	}

	err := s.queue.Enqueue(ctx, models.PendingMutation{
		SyncID:     record.SyncID,
		Op:         models.OpCreate,
		EntityType: entityType,
		Payload:    payload,
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("queue create mutation: %w", err)
	}

	return record, nil
}

func (s *clientRecordService) Update(ctx context.Context, entityType models.EntityType, syncID string, delta json.RawMessage) error {
	record, err := s.records.Get(ctx, entityType, syncID)
	if err != nil {
		return fmt.Errorf("load record for update: %w", err)
	}
	if record.Deleted {
		return store.ErrRecordTombstoned
	}

	merged, err := mergeLocalPayload(record.Payload, delta)
	if err != nil {
		return err
	}
	record.Payload = merged
	record.UpdatedAt = time.Now().UTC()

	if err = s.records.Upsert(ctx, record); err != nil {
		return fmt.Errorf("cache updated record: %w", err)
	}

	err = s.queue.Enqueue(ctx, models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpUpdate,
		EntityType: entityType,
		Payload:    delta,
	})
	if err != nil {
		return fmt.Errorf("queue update mutation: %w", err)
	}

	return nil
}

func (s *clientRecordService) Delete(ctx context.Context, entityType models.EntityType, syncID string) error {
	if err := s.records.MarkDeleted(ctx, entityType, syncID); err != nil {
		return fmt.Errorf("mark record deleted: %w", err)
	}

	err := s.queue.Enqueue(ctx, models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpDelete,
		EntityType: entityType,
	})
	if err != nil {
		return fmt.Errorf("queue delete mutation: %w", err)
	}

	return nil
}

func (s *clientRecordService) List(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	return s.records.List(ctx, entityType)
}

// mergeLocalPayload overlays a delta onto the cached payload, delta keys
// winning.
func mergeLocalPayload(base, delta json.RawMessage) (json.RawMessage, error) {
	merged := make(map[string]json.RawMessage)

	if len(base) > 0 {
		if err := json.Unmarshal(base, &merged); err != nil {
			return nil, fmt.Errorf("decode cached payload: %w", err)
		}
	}

	overlay := make(map[string]json.RawMessage)
	if len(delta) > 0 {
		if err := json.Unmarshal(delta, &overlay); err != nil {
			return nil, fmt.Errorf("decode payload delta: %w", err)
		}
	}
	for key, value := range overlay {
		merged[key] = value
	}

	return json.Marshal(merged)
}
