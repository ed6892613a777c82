package state

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// NewID returns an element identifier that is unique across canvases.
func NewID() string {
	return uuid.NewString()
}

// NewSeed returns a positive seed for the rough generator.
func NewSeed() int64 {
	return rand.Int64N(1<<31-1) + 1
}
