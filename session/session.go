// Package session holds the long-lived client session state the signature
// engine reads and mutates.
package session

import (
	"sync"

	"github.com/alex0twery0/POGOLib/device"
	"github.com/alex0twery0/POGOLib/rng"
)

// Session is the per-client mutable context shared across signing calls.
// The engine overwrites HorizontalAccuracy and VerticalAccuracy on every
// signature so the session's believed GPS accuracy tracks the last synthetic
// fix. The engine itself performs no locking; callers signing the same
// session from multiple goroutines must hold the mutex around each call.
type Session struct {
	mu sync.Mutex

	Latitude           float64
	Longitude          float64
	HorizontalAccuracy float64
	VerticalAccuracy   float64

	Device *device.Profile
	Random *rng.Source
}

// New creates a session at the given coordinate with an OS-seeded random
// source and a random device profile.
func New(latitude, longitude float64) *Session {
	src := rng.New()
	return &Session{
		Latitude:  latitude,
		Longitude: longitude,
		Device:    device.NewRandom(src),
		Random:    src,
	}
}

// NewSeeded creates a deterministic session for tests and replays.
func NewSeeded(latitude, longitude float64, seed int64) *Session {
	src := rng.NewSeeded(seed)
	return &Session{
		Latitude:  latitude,
		Longitude: longitude,
		Device:    device.NewRandom(src),
		Random:    src,
	}
}

// Lock serializes signing calls for this session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the signing lock.
func (s *Session) Unlock() { s.mu.Unlock() }
