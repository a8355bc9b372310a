// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/mock"
	"github.com/avolkov/nutrisync/internal/store"
	"github.com/avolkov/nutrisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────────────────────────────────────

type clientSyncFixture struct {
	queue   *mock.MockMutationQueue
	records *mock.MockMergeStore
	state   *mock.MockSyncStateStorage
	gateway *mock.MockServerGateway
	svc     ClientSyncService
}

func newClientSyncFixture(t *testing.T) *clientSyncFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &clientSyncFixture{
		queue:   mock.NewMockMutationQueue(ctrl),
		records: mock.NewMockMergeStore(ctrl),
		state:   mock.NewMockSyncStateStorage(ctrl),
		gateway: mock.NewMockServerGateway(ctrl),
	}
	f.svc = NewClientSyncService(&store.ClientStorages{
		Queue:   f.queue,
		Records: f.records,
		State:   f.state,
	}, f.gateway, "device-a", logger.Nop())

	return f
}

func pendingCreate(syncID string) models.PendingMutation {
	return models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpCreate,
		EntityType: models.EntityFoodLog,
		Payload:    json.RawMessage(`{"meal_type":"lunch","food_name":"soup","servings":1,"calories":250}`),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SyncRound
// ─────────────────────────────────────────────────────────────────────────────

func TestClientSyncRound_HappyPath(t *testing.T) {
	f := newClientSyncFixture(t)
	ctx := context.Background()
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	echo := models.Record{ID: 42, SyncID: "f1", EntityType: models.EntityFoodLog}
	foreign := models.Record{ID: 43, SyncID: "from-device-b", EntityType: models.EntityFoodLog}

	f.queue.EXPECT().Drain(ctx).Return([]models.PendingMutation{pendingCreate("f1")}, nil)
	f.state.EXPECT().LastSync(ctx).Return(nil, nil)
	f.gateway.EXPECT().SyncRound(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.SyncRequest) (models.SyncResponse, error) {
			assert.Equal(t, "device-a", request.DeviceID)
			assert.Nil(t, request.LastSyncTimestamp)
			require.Len(t, request.Changes[models.EntityFoodLog], 1)
			assert.Equal(t, "f1", request.Changes[models.EntityFoodLog][0].SyncID)

			return models.SyncResponse{
				SyncTimestamp: syncedAt,
				ProcessedChanges: map[models.EntityType]models.ProcessedSet{
					models.EntityFoodLog: {Created: []models.Record{echo}},
				},
				ServerChanges: map[models.EntityType][]models.Record{
					models.EntityFoodLog: {foreign},
				},
			}, nil
		})
	f.queue.EXPECT().Acknowledge(ctx, []string{"f1"}).Return(nil)
	f.records.EXPECT().Upsert(ctx, echo).Return(nil)
	f.records.EXPECT().Upsert(ctx).Return(nil) // empty Updated set
	f.records.EXPECT().Upsert(ctx, foreign).Return(nil)
	f.state.EXPECT().SetLastSync(ctx, syncedAt).Return(nil)

	summary, err := f.svc.SyncRound(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Submitted)
	assert.Equal(t, 1, summary.Acknowledged)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.Downloaded)
	assert.Equal(t, syncedAt, summary.SyncedAt)
}

// A transport failure must leave the queue fully intact: nothing
// acknowledged, nothing merged, watermark unchanged.
func TestClientSyncRound_TransportFailure_KeepsQueue(t *testing.T) {
	f := newClientSyncFixture(t)
	ctx := context.Background()

	f.queue.EXPECT().Drain(ctx).Return([]models.PendingMutation{pendingCreate("f1")}, nil)
	f.state.EXPECT().LastSync(ctx).Return(nil, nil)
	f.gateway.EXPECT().SyncRound(ctx, gomock.Any()).Return(models.SyncResponse{}, errors.New("connection refused"))

	_, err := f.svc.SyncRound(ctx)
	assert.Error(t, err)
	// no Acknowledge, Upsert or SetLastSync expectations: any such call fails the test
}

func TestClientSyncRound_FailedMutationsStayQueued(t *testing.T) {
	f := newClientSyncFixture(t)
	ctx := context.Background()
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.queue.EXPECT().Drain(ctx).Return([]models.PendingMutation{pendingCreate("good"), pendingCreate("bad")}, nil)
	f.state.EXPECT().LastSync(ctx).Return(nil, nil)
	f.gateway.EXPECT().SyncRound(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: syncedAt,
		ProcessedChanges: map[models.EntityType]models.ProcessedSet{
			models.EntityFoodLog: {
				Created: []models.Record{{ID: 1, SyncID: "good", EntityType: models.EntityFoodLog}},
				Failed:  []models.ItemError{{SyncID: "bad", Reason: "servings must be positive"}},
			},
		},
	}, nil)
	f.queue.EXPECT().Acknowledge(ctx, []string{"good"}).Return(nil)
	f.records.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).AnyTimes()
	f.records.EXPECT().Upsert(ctx).Return(nil).AnyTimes()
	f.state.EXPECT().SetLastSync(ctx, syncedAt).Return(nil)

	summary, err := f.svc.SyncRound(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Submitted)
	assert.Equal(t, 1, summary.Acknowledged)
	assert.Equal(t, 1, summary.Failed)
}

// No-op deletes come back in no response bucket at all; they are still
// acknowledged so they do not ride every subsequent round.
func TestClientSyncRound_NoOpDeleteAcknowledged(t *testing.T) {
	f := newClientSyncFixture(t)
	ctx := context.Background()
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.queue.EXPECT().Drain(ctx).Return([]models.PendingMutation{
		{SyncID: "ghost", Op: models.OpDelete, EntityType: models.EntityFoodLog},
	}, nil)
	f.state.EXPECT().LastSync(ctx).Return(nil, nil)
	f.gateway.EXPECT().SyncRound(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: syncedAt,
		ProcessedChanges: map[models.EntityType]models.ProcessedSet{
			models.EntityFoodLog: {},
		},
	}, nil)
	f.queue.EXPECT().Acknowledge(ctx, []string{"ghost"}).Return(nil)
	f.records.EXPECT().Upsert(ctx).Return(nil).AnyTimes()
	f.state.EXPECT().SetLastSync(ctx, syncedAt).Return(nil)

	summary, err := f.svc.SyncRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Acknowledged)
}

func TestClientSyncRound_SendsStoredWatermark(t *testing.T) {
	f := newClientSyncFixture(t)
	ctx := context.Background()
	lastSync := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.queue.EXPECT().Drain(ctx).Return(nil, nil)
	f.state.EXPECT().LastSync(ctx).Return(&lastSync, nil)
	f.gateway.EXPECT().SyncRound(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.SyncRequest) (models.SyncResponse, error) {
			require.NotNil(t, request.LastSyncTimestamp)
			assert.Equal(t, lastSync, *request.LastSyncTimestamp)
			return models.SyncResponse{SyncTimestamp: syncedAt}, nil
		})
	f.queue.EXPECT().Acknowledge(ctx, []string{}).Return(nil)
	f.state.EXPECT().SetLastSync(ctx, syncedAt).Return(nil)

	_, err := f.svc.SyncRound(ctx)
	require.NoError(t, err)
}
