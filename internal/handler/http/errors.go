package http

import "errors"

// Sentinel errors used when parsing the "Authorization" header. Callers
// can match against them with [errors.Is].
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
