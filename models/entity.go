// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityType identifies one of the synchronizable record families.
// Every mutation and every server change set is tagged with its type so
// the reconciliation engine can dispatch to the right entity store.
type EntityType string

const (
	EntityFoodLog       EntityType = "food_logs"
	EntityNutritionGoal EntityType = "nutrition_goals"
	EntityWeightLog     EntityType = "weight_logs"
	EntityWeightGoal    EntityType = "weight_goals"
)

// EntityTypes lists every registered entity type in the stable order used
// when iterating over a sync request.
var EntityTypes = []EntityType{
	EntityFoodLog,
	EntityNutritionGoal,
	EntityWeightLog,
	EntityWeightGoal,
}

// Valid reports whether t is one of the registered entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityFoodLog, EntityNutritionGoal, EntityWeightLog, EntityWeightGoal:
		return true
	}
	return false
}

// Record is the generic shape of one authoritative synchronizable row.
// The sync engine never interprets Payload; domain fields are opaque JSON
// validated by the entity-specific validator at creation time.
type Record struct {
	// ID is the server-assigned identity. Zero until the first successful
	// server-side create.
	ID int64 `json:"id"`

	// OwnerID is the user the record belongs to. Immutable after creation.
	OwnerID int64 `json:"owner_id"`

	// SyncID is the client-generated idempotency key. Assigned once by the
	// originating device, never regenerated; the sole key used to decide
	// whether two mutations refer to the same logical record.
	SyncID string `json:"idempotency_key"`

	// EntityType names the record family this row belongs to.
	EntityType EntityType `json:"entity_type"`

	// Deleted is the soft-delete tombstone flag. Tombstoned rows are kept
	// and still returned by change-since queries so other devices can drop
	// their local copies.
	Deleted bool `json:"is_deleted"`

	// Payload holds the domain fields as opaque JSON.
	Payload json.RawMessage `json:"-"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is server-assigned and authoritative for change-since
	// computation. Bumped on every create, update and tombstone.
	UpdatedAt time.Time `json:"updated_at"`
}

// recordEnvelope mirrors Record's wire fields minus the flattened payload.
type recordEnvelope struct {
	ID         int64      `json:"id"`
	OwnerID    int64      `json:"owner_id"`
	SyncID     string     `json:"idempotency_key"`
	EntityType EntityType `json:"entity_type"`
	Deleted    bool       `json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MarshalJSON flattens Payload into the top-level object so that domain
// fields sit beside the sync envelope, matching the wire contract:
//
//	{"id":1,"idempotency_key":"k1","is_deleted":false,"meal_type":"breakfast",...}
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]json.RawMessage)

	if len(r.Payload) > 0 {
		if err := json.Unmarshal(r.Payload, &flat); err != nil {
			return nil, fmt.Errorf("flatten record payload: %w", err)
		}
	}

	env, err := json.Marshal(recordEnvelope{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		SyncID:     r.SyncID,
		EntityType: r.EntityType,
		Deleted:    r.Deleted,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	// Envelope fields win over payload fields of the same name.
	if err = json.Unmarshal(env, &flat); err != nil {
		return nil, err
	}

	return json.Marshal(flat)
}

// UnmarshalJSON splits the flattened wire object back into the sync
// envelope and the opaque payload.
func (r *Record) UnmarshalJSON(data []byte) error {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	flat := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	for _, known := range envelopeFields {
		delete(flat, known)
	}

	payload, err := json.Marshal(flat)
	if err != nil {
		return err
	}

	r.ID = env.ID
	r.OwnerID = env.OwnerID
	r.SyncID = env.SyncID
	r.EntityType = env.EntityType
	r.Deleted = env.Deleted
	r.CreatedAt = env.CreatedAt
	r.UpdatedAt = env.UpdatedAt
	r.Payload = payload

	return nil
}

// envelopeFields are the reserved wire names that never belong to a payload.
var envelopeFields = []string{
	"id",
	"owner_id",
	"idempotency_key",
	"entity_type",
	"is_deleted",
	"created_at",
	"updated_at",
}
