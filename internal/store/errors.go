package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers match against them with [errors.Is].
var (
	// ErrRecordNotFound is returned when a lookup by (owner_id, sync_id)
	// matches no row.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordTombstoned is returned when a mutation targets a record
	// whose tombstone flag is already set. A tombstoned payload is frozen;
	// further updates are rejected rather than silently applied.
	ErrRecordTombstoned = errors.New("record is tombstoned")

	// ErrDuplicateSyncID is returned when an insert loses the create race:
	// another request persisted the same (owner_id, sync_id) pair first.
	// The caller should re-read and treat the mutation as a replay.
	ErrDuplicateSyncID = errors.New("sync id already exists for owner")

	// ErrWatermarkNotFound is returned when a device has never completed
	// a sync round.
	ErrWatermarkNotFound = errors.New("device watermark was not found")

	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
)
