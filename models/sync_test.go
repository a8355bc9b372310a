// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ChangeItem wire format ───────────────────────────────────────────────────

func TestChangeItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		wire        string
		wantSyncID  string
		wantDeleted bool
		wantPayload string
	}{
		{
			name:        "create with domain fields",
			wire:        `{"idempotency_key":"k1","is_deleted":false,"meal_type":"lunch","calories":640}`,
			wantSyncID:  "k1",
			wantDeleted: false,
			wantPayload: `{"meal_type":"lunch","calories":640}`,
		},
		{
			name:        "tombstone carries no payload fields",
			wire:        `{"idempotency_key":"k2","is_deleted":true}`,
			wantSyncID:  "k2",
			wantDeleted: true,
			wantPayload: `{}`,
		},
		{
			name:        "missing is_deleted defaults to false",
			wire:        `{"idempotency_key":"k3","weight_kg":78.2}`,
			wantSyncID:  "k3",
			wantDeleted: false,
			wantPayload: `{"weight_kg":78.2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item ChangeItem
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &item))

			assert.Equal(t, tt.wantSyncID, item.SyncID)
			assert.Equal(t, tt.wantDeleted, item.IsDeleted)
			assert.JSONEq(t, tt.wantPayload, string(item.Payload))
		})
	}
}

func TestChangeItem_MarshalJSON_Flattens(t *testing.T) {
	item := ChangeItem{
		SyncID:    "k9",
		IsDeleted: false,
		Payload:   json.RawMessage(`{"target_weight_kg":75}`),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"idempotency_key":"k9","is_deleted":false,"target_weight_kg":75}`, string(data))
}

// ── SyncRequest ──────────────────────────────────────────────────────────────

func TestSyncRequest_Decode(t *testing.T) {
	wire := []byte(`{
		"device_id": "device-abc",
		"last_sync_timestamp": "2026-03-01T12:00:00Z",
		"changes": {
			"food_logs": [
				{"idempotency_key":"f1","is_deleted":false,"meal_type":"dinner","food_name":"soup","servings":1,"calories":250,"logged_date":"2026-03-01"}
			],
			"weight_logs": [
				{"idempotency_key":"w1","is_deleted":true}
			]
		}
	}`)

	var request SyncRequest
	require.NoError(t, json.Unmarshal(wire, &request))

	assert.Equal(t, "device-abc", request.DeviceID)
	require.NotNil(t, request.LastSyncTimestamp)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), *request.LastSyncTimestamp)

	require.Len(t, request.Changes[EntityFoodLog], 1)
	assert.Equal(t, "f1", request.Changes[EntityFoodLog][0].SyncID)
	assert.False(t, request.Changes[EntityFoodLog][0].IsDeleted)

	require.Len(t, request.Changes[EntityWeightLog], 1)
	assert.True(t, request.Changes[EntityWeightLog][0].IsDeleted)
}

func TestSyncRequest_FirstSync_NilWatermark(t *testing.T) {
	var request SyncRequest
	require.NoError(t, json.Unmarshal([]byte(`{"device_id":"d1","last_sync_timestamp":null,"changes":{}}`), &request))
	assert.Nil(t, request.LastSyncTimestamp)
}

// ── PendingMutation → ChangeItem ─────────────────────────────────────────────

func TestPendingMutation_ChangeItem(t *testing.T) {
	payload := json.RawMessage(`{"meal_type":"snack"}`)

	update := PendingMutation{SyncID: "m1", Op: OpUpdate, EntityType: EntityFoodLog, Payload: payload}
	item := update.ChangeItem()
	assert.Equal(t, "m1", item.SyncID)
	assert.False(t, item.IsDeleted)
	assert.Equal(t, payload, item.Payload)

	del := PendingMutation{SyncID: "m2", Op: OpDelete, EntityType: EntityFoodLog}
	assert.True(t, del.ChangeItem().IsDeleted)
}
