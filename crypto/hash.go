// Package crypto defines the hash and cipher contracts the signature engine
// consumes, together with the default implementations the live protocol uses.
package crypto

import "github.com/OneOfOne/xxhash"

// Hasher is the keyed-hash contract used for location and request hashes.
// Implementations must be deterministic pure functions of their input.
type Hasher interface {
	// Hash32 returns the unsalted 32-bit hash of buf.
	Hash32(buf []byte) uint32
	// Hash32Salt returns the 32-bit hash of buf keyed with salt.
	Hash32Salt(buf []byte, salt uint32) uint32
	// Hash64 returns the unsalted 64-bit hash of buf.
	Hash64(buf []byte) uint64
	// Hash64Salt returns the 64-bit hash of buf keyed with salt.
	Hash64Salt(buf []byte, salt uint64) uint64
}

// XXHasher implements Hasher with seeded xxHash checksums.
type XXHasher struct{}

// NewHasher returns the default Hasher.
func NewHasher() Hasher { return XXHasher{} }

func (XXHasher) Hash32(buf []byte) uint32 { return xxhash.Checksum32(buf) }

func (XXHasher) Hash32Salt(buf []byte, salt uint32) uint32 { return xxhash.Checksum32S(buf, salt) }

func (XXHasher) Hash64(buf []byte) uint64 { return xxhash.Checksum64(buf) }

func (XXHasher) Hash64Salt(buf []byte, salt uint64) uint64 { return xxhash.Checksum64S(buf, salt) }
