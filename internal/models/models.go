// Package models defines the entities shared by the prompt and
// collection domains, along with identity and clock helpers so both
// domains generate ids and timestamps the same way.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID generates an opaque unique entity id.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC time. All entity timestamps come from
// this clock.
func Now() time.Time {
	return time.Now().UTC()
}
