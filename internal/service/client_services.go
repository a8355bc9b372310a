package service

import (
	"context"
	"fmt"

	"github.com/avolkov/nutrisync/internal/adapter"
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/store"
	"github.com/avolkov/nutrisync/internal/utils"
)

// NewClientServices wires the device-side services. configuredDeviceID
// may be empty, in which case a generated id is persisted on first run
// and reused afterwards.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, gateway adapter.ServerGateway, configuredDeviceID string, log *logger.Logger) (*ClientServices, error) {
	fallback := configuredDeviceID
	if fallback == "" {
		fallback = utils.NewUUIDGenerator().Generate()
	}

	deviceID, err := storages.State.EnsureDevice(ctx, fallback)
	if err != nil {
		return nil, fmt.Errorf("resolve device id: %w", err)
	}
	log.Info().Str("device_id", deviceID).Msg("device identity resolved")

	syncService := NewClientSyncService(storages, gateway, deviceID, log)

	return &ClientServices{
		Records: NewClientRecordService(storages),
		Sync:    syncService,
		Job:     NewClientSyncJob(syncService, log),
	}, nil
}
