// Package rng provides the per-session random source used by the signature
// engine for every synthetic telemetry draw.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source wraps math/rand with the half-open range draws the signature engine
// needs. A Source belongs to exactly one session and is not safe for
// concurrent use; callers that sign concurrently must serialize access.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded from the operating system CSPRNG.
func New() *Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// there is no meaningful fallback for a session-scoped source.
		panic("rng: crypto/rand unavailable: " + err.Error())
	}
	return NewSeeded(int64(binary.BigEndian.Uint64(b[:])))
}

// NewSeeded returns a deterministic Source. Intended for tests and for
// replaying a recorded session.
func NewSeeded(seed int64) *Source {
	// math/rand is deliberate here: draws must be reproducible under a pinned
	// seed, which crypto/rand cannot provide. The seed itself is
	// cryptographically generated in New. #nosec G404
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). Panics if n <= 0, matching math/rand.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// IntRange returns a uniform int in [lo, hi).
func (s *Source) IntRange(lo, hi int) int { return lo + s.r.Intn(hi-lo) }

// Int64Range returns a uniform int64 in [lo, hi).
func (s *Source) Int64Range(lo, hi int64) int64 { return lo + s.r.Int63n(hi-lo) }

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Float64Range returns a uniform float64 in [lo, hi).
func (s *Source) Float64Range(lo, hi float64) float64 { return lo + s.r.Float64()*(hi-lo) }

// Bytes fills a new n-byte slice from the source.
func (s *Source) Bytes(n int) []byte {
	b := make([]byte, n)
	// rand.Rand.Read never returns an error.
	s.r.Read(b)
	return b
}

// Read implements io.Reader so identifier generators can draw from the
// session source instead of the OS CSPRNG. Never returns an error.
func (s *Source) Read(p []byte) (int, error) { return s.r.Read(p) }
