// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package models

import (
	"encoding/json"
	"time"
)

// SyncRequest is one sync round sent by a device. It bundles every pending
// mutation accumulated offline together with the device's last successful
// sync watermark.
type SyncRequest struct {
	// DeviceID is a stable identifier of the client installation.
	// Required; a request without it is rejected before any mutation
	// is processed.
	DeviceID string `json:"device_id"`

	// LastSyncTimestamp is the watermark of the previous successful round,
	// or nil on the very first sync from this device.
	LastSyncTimestamp *time.Time `json:"last_sync_timestamp"`

	// Changes groups the pending mutations by entity type. Order within
	// each slice is the client-local mutation order and is preserved by
	// the reconciliation engine.
	Changes map[EntityType][]ChangeItem `json:"changes"`
}

// ChangeItem is one client mutation on the wire. The operation is implied
// rather than stated: IsDeleted true means delete; otherwise the server
// decides between create and update by looking the idempotency key up.
type ChangeItem struct {
	// SyncID is the idempotency key of the logical record.
	SyncID string

	// IsDeleted marks the mutation as a tombstone request.
	IsDeleted bool

	// Payload carries the domain fields (everything that is not part of
	// the sync envelope), opaque to the engine.
	Payload json.RawMessage
}

type changeItemEnvelope struct {
	SyncID    string `json:"idempotency_key"`
	IsDeleted bool   `json:"is_deleted"`
}

// UnmarshalJSON extracts the sync envelope and keeps the remaining fields
// as the opaque payload.
func (c *ChangeItem) UnmarshalJSON(data []byte) error {
	var env changeItemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	flat := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	delete(flat, "idempotency_key")
	delete(flat, "is_deleted")

	payload, err := json.Marshal(flat)
	if err != nil {
		return err
	}

	c.SyncID = env.SyncID
	c.IsDeleted = env.IsDeleted
	c.Payload = payload

	return nil
}

// MarshalJSON flattens the payload fields beside the envelope fields.
func (c ChangeItem) MarshalJSON() ([]byte, error) {
	flat := make(map[string]json.RawMessage)
	if len(c.Payload) > 0 {
		if err := json.Unmarshal(c.Payload, &flat); err != nil {
			return nil, err
		}
	}

	key, err := json.Marshal(c.SyncID)
	if err != nil {
		return nil, err
	}
	deleted, err := json.Marshal(c.IsDeleted)
	if err != nil {
		return nil, err
	}
	flat["idempotency_key"] = key
	flat["is_deleted"] = deleted

	return json.Marshal(flat)
}

// SyncResponse is the server's answer to one sync round.
type SyncResponse struct {
	// SyncTimestamp is the server clock at the end of the round. The
	// client stores it as its next LastSyncTimestamp.
	SyncTimestamp time.Time `json:"sync_timestamp"`

	// ProcessedChanges reports the outcome of every submitted mutation,
	// per entity type.
	ProcessedChanges map[EntityType]ProcessedSet `json:"processed_changes"`

	// ServerChanges carries every record mutated on the server since the
	// request's watermark, excluding records the device itself just
	// submitted in this round.
	ServerChanges map[EntityType][]Record `json:"server_changes"`
}

// ProcessedSet is the per-entity-type outcome of applied mutations.
// A mutation that appears in none of Created/Updated/Deleted and has no
// entry in Failed was applied as a no-op (e.g. a delete for a key the
// server has never seen).
type ProcessedSet struct {
	Created []Record `json:"created"`
	Updated []Record `json:"updated"`

	// Deleted lists the server-assigned ids of tombstoned records.
	Deleted []int64 `json:"deleted"`

	// Failed lists mutations that were skipped. Their queue entries stay
	// unacknowledged on the client and are retried next round.
	Failed []ItemError `json:"failed,omitempty"`
}

// ItemError reports one skipped mutation without aborting the batch.
type ItemError struct {
	SyncID string `json:"idempotency_key"`
	Reason string `json:"reason"`
}

// SyncStatus is the response of the watermark status query.
type SyncStatus struct {
	DeviceID          string     `json:"device_id"`
	LastSyncTimestamp *time.Time `json:"last_sync_timestamp"`
}
