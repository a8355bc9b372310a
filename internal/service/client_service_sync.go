package service

import (
	"context"
	"fmt"

	"github.com/avolkov/nutrisync/internal/adapter"
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/store"
	"github.com/avolkov/nutrisync/models"
)

type clientSyncService struct {
	queue   store.MutationQueue
	records store.MergeStore
	state   store.SyncStateStorage
	gateway adapter.ServerGateway

	deviceID string
	logger   *logger.Logger
}

// NewClientSyncService constructs the device-side round executor.
// deviceID must already be resolved via the sync state storage.
func NewClientSyncService(storages *store.ClientStorages, gateway adapter.ServerGateway, deviceID string, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		queue:    storages.Queue,
		records:  storages.Records,
		state:    storages.State,
		gateway:  gateway,
		deviceID: deviceID,
		logger:   log,
	}
}

func (s *clientSyncService) SyncRound(ctx context.Context) (RoundSummary, error) {
	log := logger.FromContext(ctx)

	mutations, err := s.queue.Drain(ctx)
	if err != nil {
		return RoundSummary{}, fmt.Errorf("drain mutation queue: %w", err)
	}

	lastSync, err := s.state.LastSync(ctx)
	if err != nil {
		return RoundSummary{}, fmt.Errorf("read local watermark: %w", err)
	}

	request := models.SyncRequest{
		DeviceID:          s.deviceID,
		LastSyncTimestamp: lastSync,
		Changes:           groupByEntityType(mutations),
	}

	response, err := s.gateway.SyncRound(ctx, request)
	if err != nil {
		// The queue is untouched; the whole list rides again next round.
		return RoundSummary{}, fmt.Errorf("sync round exchange: %w", err)
	}

	summary := RoundSummary{
		Submitted: len(mutations),
		SyncedAt:  response.SyncTimestamp,
	}

	// Per-mutation acknowledgment: everything except the reported
	// failures is confirmed, including no-op deletes the server chose not
	// to echo anywhere.
	failed := make(map[string]struct{})
	for _, set := range response.ProcessedChanges {
		for _, itemErr := range set.Failed {
			failed[itemErr.SyncID] = struct{}{}
		}
	}

	acknowledged := make([]string, 0, len(mutations))
	for _, mutation := range mutations {
		if _, isFailed := failed[mutation.SyncID]; isFailed {
			continue
		}
		acknowledged = append(acknowledged, mutation.SyncID)
	}
	if err = s.queue.Acknowledge(ctx, acknowledged); err != nil {
		return RoundSummary{}, fmt.Errorf("acknowledge mutations: %w", err)
	}
	summary.Acknowledged = len(acknowledged)
	summary.Failed = len(mutations) - len(acknowledged)

	// Authoritative echoes of this device's own writes carry the
	// server-assigned ids and timestamps.
	for entityType, set := range response.ProcessedChanges {
		if !entityType.Valid() {
			continue
		}
		if err = s.records.Upsert(ctx, set.Created...); err != nil {
			return summary, fmt.Errorf("merge created records: %w", err)
		}
		if err = s.records.Upsert(ctx, set.Updated...); err != nil {
			return summary, fmt.Errorf("merge updated records: %w", err)
		}
	}

	for _, records := range response.ServerChanges {
		if err = s.records.Upsert(ctx, records...); err != nil {
			return summary, fmt.Errorf("merge server changes: %w", err)
		}
		summary.Downloaded += len(records)
	}

	if err = s.state.SetLastSync(ctx, response.SyncTimestamp); err != nil {
		return summary, fmt.Errorf("store local watermark: %w", err)
	}

	log.Info().
		Str("func", "clientSyncService.SyncRound").
		Str("device_id", s.deviceID).
		Int("submitted", summary.Submitted).
		Int("acknowledged", summary.Acknowledged).
		Int("failed", summary.Failed).
		Int("downloaded", summary.Downloaded).
		Time("synced_at", summary.SyncedAt).
		Msg("sync round finished")

	return summary, nil
}

func groupByEntityType(mutations []models.PendingMutation) map[models.EntityType][]models.ChangeItem {
	changes := make(map[models.EntityType][]models.ChangeItem)
	for _, mutation := range mutations {
		changes[mutation.EntityType] = append(changes[mutation.EntityType], mutation.ChangeItem())
	}

	return changes
}
