// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package store

const (
	getQueuedMutation = `
		SELECT sync_id, entity_type, op, payload, attempted, enqueued_at
		FROM pending_mutations
		WHERE sync_id = ?;`

	insertQueuedMutation = `
		INSERT INTO pending_mutations (sync_id, entity_type, op, payload, enqueued_at)
		VALUES (?, ?, ?, ?, ?);`

	updateQueuedMutation = `
		UPDATE pending_mutations
		SET op = ?, payload = ?
		WHERE sync_id = ?;`

	deleteQueuedMutation = `
		DELETE FROM pending_mutations
		WHERE sync_id = ?;`

	drainQueuedMutations = `
		SELECT sync_id, entity_type, op, payload, attempted, enqueued_at
		FROM pending_mutations
		ORDER BY id;`

	bumpAttemptCounters = `
		UPDATE pending_mutations
		SET attempted = attempted + 1;`

	countQueuedMutations = `
		SELECT COUNT(*) FROM pending_mutations;`

	upsertLocalRecord = `
		INSERT INTO local_records (entity_type, sync_id, server_id, payload, deleted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, sync_id) DO UPDATE SET
			server_id  = excluded.server_id,
			payload    = excluded.payload,
			deleted    = excluded.deleted,
			updated_at = excluded.updated_at;`

	getLocalRecord = `
		SELECT entity_type, sync_id, server_id, payload, deleted, updated_at
		FROM local_records
		WHERE entity_type = ? AND sync_id = ?;`

	listLocalRecords = `
		SELECT entity_type, sync_id, server_id, payload, deleted, updated_at
		FROM local_records
		WHERE entity_type = ? AND deleted = 0
		ORDER BY sync_id;`

	markLocalRecordDeleted = `
		UPDATE local_records
		SET deleted = 1
		WHERE entity_type = ? AND sync_id = ?;`

	getSyncState = `
		SELECT device_id, last_sync_at
		FROM client_sync_state
		WHERE id = 1;`

	initSyncState = `
		INSERT INTO client_sync_state (id, device_id, last_sync_at)
		VALUES (1, ?, NULL);`

	setSyncWatermark = `
		UPDATE client_sync_state
		SET last_sync_at = ?
		WHERE id = 1;`
)
