// Package uuidx provides random unique-identifier generation for the
// toolkit, over github.com/google/uuid.
package uuidx

import "github.com/google/uuid"

// NewV4 returns a randomly generated version 4 UUID. Each call draws fresh
// randomness; no state is shared between calls.
//
// Example:
//
//	id := uuidx.NewV4()
func NewV4() uuid.UUID {
	return uuid.New()
}

// NewV4String returns a randomly generated version 4 UUID in its canonical
// string form.
func NewV4String() string {
	return uuid.NewString()
}
