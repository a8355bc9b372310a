// Package utils provides small helpers shared across the application:
// type-safe context keys, JSON response writing and idempotency key
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string-based keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated owner id.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the owner id placed in ctx by the auth
// middleware. ok is false when the value is missing or has the wrong type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
