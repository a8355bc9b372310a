package models

import (
	"encoding/json"
	"time"
)

// MutationOp is the kind of a queued local mutation.
type MutationOp string

const (
	OpCreate MutationOp = "create"
	OpUpdate MutationOp = "update"
	OpDelete MutationOp = "delete"
)

// PendingMutation is one entry of the client mutation queue. It never
// travels to the server as a first-class object; the queue turns pending
// mutations into wire ChangeItems when a sync round is assembled.
type PendingMutation struct {
	SyncID     string          `json:"idempotency_key"`
	Op         MutationOp      `json:"operation"`
	EntityType EntityType      `json:"entity_type"`
	Payload    json.RawMessage `json:"payload,omitempty"`

	// Attempted counts how many sync rounds have carried this mutation.
	// Retries are unbounded at this layer; backoff policy lives above.
	Attempted int `json:"attempted"`

	EnqueuedAt time.Time `json:"enqueued_at"`
}

// ChangeItem converts the queued mutation into its wire representation.
func (m PendingMutation) ChangeItem() ChangeItem {
	return ChangeItem{
		SyncID:    m.SyncID,
		IsDeleted: m.Op == OpDelete,
		Payload:   m.Payload,
	}
}
