package crypto

import (
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/salsa20"
)

var ErrEmptyPlaintext = errors.New("crypto: empty plaintext")

// Cipher is the symmetric encryption contract for signature records. ms is
// the truncated elapsed session time; identical (plaintext, ms) inputs must
// produce identical ciphertext.
type Cipher interface {
	Encrypt(plaintext []byte, ms uint32) ([]byte, error)
}

// streamCipher encrypts with a salsa20 keystream. The key is a fixed
// protocol constant; the nonce is derived from ms, so the ciphertext is a
// pure function of (plaintext, ms). The ciphertext carries a 4-byte
// big-endian ms prefix so the receiver can reconstruct the keystream.
type streamCipher struct {
	key [32]byte
}

// cipherKey mirrors the fixed key material baked into the client binary.
// Protocol constant, not tunable.
var cipherKey = [32]byte{
	0x4f, 0xeb, 0x1c, 0xa5, 0xf6, 0x1a, 0x67, 0xce,
	0x43, 0xf3, 0xf0, 0x0c, 0xb1, 0x23, 0x88, 0x35,
	0xe9, 0x8b, 0xe1, 0x7e, 0xb7, 0xb1, 0xe0, 0x21,
	0x49, 0x10, 0x6f, 0x73, 0x79, 0xaa, 0x3f, 0x91,
}

// NewCipher returns the default Cipher.
func NewCipher() Cipher { return &streamCipher{key: cipherKey} }

// NewCipherWithKey returns a Cipher using the given key instead of the
// protocol constant. Intended for tests.
func NewCipherWithKey(key [32]byte) Cipher { return &streamCipher{key: key} }

func (c *streamCipher) Encrypt(plaintext []byte, ms uint32) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyPlaintext
	}

	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(ms))

	out := make([]byte, 4+len(plaintext))
	binary.BigEndian.PutUint32(out[:4], ms)
	salsa20.XORKeyStream(out[4:], plaintext, nonce[:], &c.key)
	return out, nil
}
