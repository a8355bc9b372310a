package utils

import "github.com/google/uuid"

// UUIDGenerator produces idempotency keys for locally created records.
// UUIDv7 keeps keys roughly time-ordered, which makes queue inspection
// and server-side debugging easier; v4 is the fallback when the system
// clock misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
