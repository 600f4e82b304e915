package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// NewID returns a time-ordered opaque record id.
// UUIDv7 packs a millisecond timestamp followed by random bits.
func NewID() string {
	return GenerateUUIDv7().String()
}
