// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLocalDB opens a migrated SQLite file in a per-test temp dir.
func newTestLocalDB(t *testing.T) *LocalDB {
	t.Helper()

	db, err := NewLocalDB(filepath.Join(t.TempDir(), "nutrisync.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func createMutation(syncID, payload string) models.PendingMutation {
	return models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpCreate,
		EntityType: models.EntityFoodLog,
		Payload:    json.RawMessage(payload),
	}
}

func updateMutation(syncID, payload string) models.PendingMutation {
	return models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpUpdate,
		EntityType: models.EntityFoodLog,
		Payload:    json.RawMessage(payload),
	}
}

func deleteMutation(syncID string) models.PendingMutation {
	return models.PendingMutation{
		SyncID:     syncID,
		Op:         models.OpDelete,
		EntityType: models.EntityFoodLog,
	}
}

// ── Enqueue / Drain ──────────────────────────────────────────────────────────

func TestMutationQueue_EnqueueDrain(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{"meal_type":"lunch"}`)))
	require.NoError(t, queue.Enqueue(ctx, updateMutation("f2", `{"calories":300}`)))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 2)

	// enqueue order is preserved
	assert.Equal(t, "f1", mutations[0].SyncID)
	assert.Equal(t, models.OpCreate, mutations[0].Op)
	assert.Equal(t, "f2", mutations[1].SyncID)
	assert.JSONEq(t, `{"calories":300}`, string(mutations[1].Payload))
}

func TestMutationQueue_Drain_BumpsAttemptCounter(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{}`)))

	first, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first[0].Attempted)

	second, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second[0].Attempted, "draining does not remove entries, it counts attempts")
}

func TestMutationQueue_UnknownOp(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())

	err := queue.Enqueue(context.Background(), models.PendingMutation{SyncID: "x", Op: "upsert"})
	assert.ErrorIs(t, err, ErrUnknownMutationOp)
}

// ── Coalescing ───────────────────────────────────────────────────────────────

func TestMutationQueue_Coalesce_UpdateUpdate_LatestWins(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":250,"meal_type":"lunch"}`)))
	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":300}`)))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1, "same sync id coalesces into one entry")
	assert.Equal(t, models.OpUpdate, mutations[0].Op)
	assert.JSONEq(t, `{"calories":300,"meal_type":"lunch"}`, string(mutations[0].Payload))
}

func TestMutationQueue_Coalesce_UpdateUpdate_ZeroValuesWin(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	// The newer delta resets fields to their zero values; those resets are
	// edits and must survive coalescing.
	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":500,"notes":"abc","favorite":true}`)))
	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":0,"notes":"","favorite":false}`)))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.JSONEq(t, `{"calories":0,"notes":"","favorite":false}`, string(mutations[0].Payload))
}

func TestMutationQueue_Coalesce_CreateThenUpdate_StaysCreate(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{"meal_type":"lunch","calories":250}`)))
	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":320}`)))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.Equal(t, models.OpCreate, mutations[0].Op, "the server has never seen the record, so it must arrive as a create")
	assert.JSONEq(t, `{"meal_type":"lunch","calories":320}`, string(mutations[0].Payload))
}

func TestMutationQueue_Coalesce_CreateThenDelete_Collapses(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{"meal_type":"lunch"}`)))
	require.NoError(t, queue.Enqueue(ctx, deleteMutation("f1")))

	count, err := queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "a record created and deleted offline never travels")
}

func TestMutationQueue_Coalesce_UpdateThenDelete_BecomesDelete(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":300}`)))
	require.NoError(t, queue.Enqueue(ctx, deleteMutation("f1")))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.Equal(t, models.OpDelete, mutations[0].Op)
	assert.JSONEq(t, `{}`, string(mutations[0].Payload), "a delete carries no payload")
}

func TestMutationQueue_Coalesce_AfterDelete_Rejected(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, updateMutation("f1", `{}`)))
	require.NoError(t, queue.Enqueue(ctx, deleteMutation("f1")))

	assert.ErrorIs(t, queue.Enqueue(ctx, updateMutation("f1", `{"calories":1}`)), ErrMutationAfterDelete)
	assert.ErrorIs(t, queue.Enqueue(ctx, deleteMutation("f1")), ErrMutationAfterDelete)
}

// ── Acknowledge ──────────────────────────────────────────────────────────────

func TestMutationQueue_Acknowledge_Partial(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{}`)))
	require.NoError(t, queue.Enqueue(ctx, createMutation("f2", `{}`)))
	require.NoError(t, queue.Enqueue(ctx, createMutation("f3", `{}`)))

	require.NoError(t, queue.Acknowledge(ctx, []string{"f1", "f3"}))

	mutations, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1, "unacknowledged entries survive for the next round")
	assert.Equal(t, "f2", mutations[0].SyncID)
}

func TestMutationQueue_Acknowledge_Empty_NoOp(t *testing.T) {
	queue := NewMutationQueue(newTestLocalDB(t), logger.Nop())
	assert.NoError(t, queue.Acknowledge(context.Background(), nil))
}

// ── Durability ───────────────────────────────────────────────────────────────

func TestMutationQueue_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisync.db")
	ctx := context.Background()

	db, err := NewLocalDB(path, logger.Nop())
	require.NoError(t, err)
	queue := NewMutationQueue(db, logger.Nop())
	require.NoError(t, queue.Enqueue(ctx, createMutation("f1", `{"meal_type":"dinner"}`)))
	require.NoError(t, db.Close())

	reopened, err := NewLocalDB(path, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	mutations, err := NewMutationQueue(reopened, logger.Nop()).Drain(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 1, "queued mutations survive a process restart")
	assert.Equal(t, "f1", mutations[0].SyncID)
}
