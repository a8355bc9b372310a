package store

import "errors"

var (
	// ErrMutationAfterDelete is returned by the mutation queue when a new
	// mutation targets a sync id that already has a queued delete. The
	// tombstone is final; the caller should create a new record with a
	// fresh idempotency key instead.
	ErrMutationAfterDelete = errors.New("mutation targets a key queued for deletion")

	// ErrUnknownMutationOp is returned when a queue entry carries an
	// operation outside create/update/delete.
	ErrUnknownMutationOp = errors.New("unknown mutation operation")
)
