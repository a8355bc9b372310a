// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package store

import (
	"context"
	"testing"
	"time"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncState_EnsureDevice_InitializesOnce(t *testing.T) {
	state := NewSyncStateStorage(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	deviceID, err := state.EnsureDevice(ctx, "generated-uuid")
	require.NoError(t, err)
	assert.Equal(t, "generated-uuid", deviceID)

	// a later call with a different fallback keeps the stored identity
	again, err := state.EnsureDevice(ctx, "other-uuid")
	require.NoError(t, err)
	assert.Equal(t, "generated-uuid", again)
}

func TestSyncState_LastSync_NilBeforeFirstRound(t *testing.T) {
	state := NewSyncStateStorage(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	at, err := state.LastSync(ctx)
	require.NoError(t, err)
	assert.Nil(t, at, "no row yet")

	_, err = state.EnsureDevice(ctx, "device-a")
	require.NoError(t, err)

	at, err = state.LastSync(ctx)
	require.NoError(t, err)
	assert.Nil(t, at, "row exists but the device has never synced")
}

func TestSyncState_SetAndReadWatermark(t *testing.T) {
	state := NewSyncStateStorage(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := state.EnsureDevice(ctx, "device-a")
	require.NoError(t, err)
	require.NoError(t, state.SetLastSync(ctx, syncedAt))

	at, err := state.LastSync(ctx)
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.True(t, at.Equal(syncedAt))
}

func TestSyncState_SetLastSync_WithoutRow(t *testing.T) {
	state := NewSyncStateStorage(newTestLocalDB(t), logger.Nop())

	err := state.SetLastSync(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrWatermarkNotFound)
}
