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

// ── EntityType ───────────────────────────────────────────────────────────────

func TestEntityType_Valid(t *testing.T) {
	for _, entityType := range EntityTypes {
		assert.True(t, entityType.Valid(), "registered type %q must be valid", entityType)
	}

	assert.False(t, EntityType("workouts").Valid())
	assert.False(t, EntityType("").Valid())
}

// ── Record wire format ───────────────────────────────────────────────────────

func TestRecord_MarshalJSON_FlattensPayload(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	record := Record{
		ID:         42,
		OwnerID:    7,
		SyncID:     "a1b2c3",
		EntityType: EntityFoodLog,
		Deleted:    false,
		Payload:    json.RawMessage(`{"meal_type":"breakfast","calories":320.5}`),
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))

	// payload fields sit beside the envelope, no nested "payload" object
	assert.Equal(t, "breakfast", flat["meal_type"])
	assert.Equal(t, 320.5, flat["calories"])
	assert.NotContains(t, flat, "payload")

	assert.Equal(t, float64(42), flat["id"])
	assert.Equal(t, "a1b2c3", flat["idempotency_key"])
	assert.Equal(t, string(EntityFoodLog), flat["entity_type"])
	assert.Equal(t, false, flat["is_deleted"])
}

func TestRecord_MarshalJSON_EnvelopeWinsOnNameClash(t *testing.T) {
	record := Record{
		ID:      1,
		SyncID:  "real-key",
		Payload: json.RawMessage(`{"idempotency_key":"spoofed","id":999}`),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))

	assert.Equal(t, "real-key", flat["idempotency_key"])
	assert.Equal(t, float64(1), flat["id"])
}

func TestRecord_UnmarshalJSON_SplitsEnvelopeFromPayload(t *testing.T) {
	wire := []byte(`{
		"id": 42,
		"owner_id": 7,
		"idempotency_key": "a1b2c3",
		"entity_type": "weight_logs",
		"is_deleted": true,
		"created_at": "2026-03-01T10:00:00Z",
		"updated_at": "2026-03-02T11:30:00Z",
		"weight_kg": 81.4,
		"logged_date": "2026-03-01"
	}`)

	var record Record
	require.NoError(t, json.Unmarshal(wire, &record))

	assert.Equal(t, int64(42), record.ID)
	assert.Equal(t, int64(7), record.OwnerID)
	assert.Equal(t, "a1b2c3", record.SyncID)
	assert.Equal(t, EntityWeightLog, record.EntityType)
	assert.True(t, record.Deleted)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC), record.UpdatedAt)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(record.Payload, &payload))
	assert.Equal(t, 81.4, payload["weight_kg"])
	assert.Equal(t, "2026-03-01", payload["logged_date"])
	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "idempotency_key")
	assert.NotContains(t, payload, "is_deleted")
}

func TestRecord_WireRoundTrip(t *testing.T) {
	in := Record{
		ID:         5,
		OwnerID:    2,
		SyncID:     "rt-1",
		EntityType: EntityNutritionGoal,
		Payload:    json.RawMessage(`{"daily_calorie_target":2100}`),
		CreatedAt:  time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Record
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.SyncID, out.SyncID)
	assert.Equal(t, in.EntityType, out.EntityType)
	assert.JSONEq(t, string(in.Payload), string(out.Payload))
}
