package adapter

import "errors"

var (
	// ErrUnauthorized marks a rejected bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrBadRequest marks a request-level rejection (malformed body,
	// missing device id). Retrying the same payload will not help.
	ErrBadRequest = errors.New("sync request rejected")

	// ErrServerUnavailable marks transport-level failures: the round may
	// or may not have been applied, and the caller must retry the whole
	// unacknowledged mutation list. Idempotency keys make that safe.
	ErrServerUnavailable = errors.New("sync server unavailable")
)
