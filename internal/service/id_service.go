package service

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator implements ports.IDGenerator with random v4 UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID.
func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// SystemClock implements ports.Clock using the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
