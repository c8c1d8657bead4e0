// Package signature produces the encrypted telemetry signature attached to
// every outbound request envelope. One Engine is scoped to exactly one
// session; it is not safe for concurrent use without external
// synchronization because every call mutates the session's random source
// and coordinate accuracy state.
package signature

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alex0twery0/POGOLib/crypto"
	"github.com/alex0twery0/POGOLib/protocol"
	"github.com/alex0twery0/POGOLib/session"
)

var (
	ErrNilSession      = errors.New("signature: nil session")
	ErrNilEnvelope     = errors.New("signature: nil request envelope")
	ErrNoRequests      = errors.New("signature: request envelope has no sub-requests")
	ErrNoLocationFixes = errors.New("signature: no location fixes generated")
)

// SessionHashSize is the byte length of the per-session hash embedded in
// every record.
const SessionHashSize = 16

// Engine owns the per-session signing state: the monotonic elapsed-time
// origin, the constant session hash, and the hash/cipher primitives.
type Engine struct {
	session *session.Session
	hasher  crypto.Hasher
	cipher  crypto.Cipher
	log     *slog.Logger

	now         func() time.Time
	start       time.Time
	sessionHash [SessionHashSize]byte
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSessionHash pins the session hash instead of generating a random one.
func WithSessionHash(hash [SessionHashSize]byte) Option {
	return func(e *Engine) { e.sessionHash = hash }
}

// WithHasher replaces the default hash primitives.
func WithHasher(h crypto.Hasher) Option {
	return func(e *Engine) { e.hasher = h }
}

// WithCipher replaces the default cipher.
func WithCipher(c crypto.Cipher) Option {
	return func(e *Engine) { e.cipher = c }
}

// WithTimeSource replaces the wall clock. The elapsed-time origin is read
// from the source at construction.
func WithTimeSource(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates a signing engine bound to sess. The session hash is
// generated once here and reused for every signature the engine produces.
func NewEngine(sess *session.Session, opts ...Option) (*Engine, error) {
	if sess == nil {
		return nil, ErrNilSession
	}

	e := &Engine{
		session: sess,
		hasher:  crypto.NewHasher(),
		cipher:  crypto.NewCipher(),
		log:     slog.Default(),
		now:     time.Now,
	}
	if _, err := crand.Read(e.sessionHash[:]); err != nil {
		return nil, fmt.Errorf("signature: generate session hash: %w", err)
	}
	for _, opt := range opts {
		opt(e)
	}
	e.start = e.now()
	return e, nil
}

// SessionHash returns the constant per-session hash.
func (e *Engine) SessionHash() [SessionHashSize]byte { return e.sessionHash }

// elapsedMs is the milliseconds since engine construction, the temporal
// origin for every synthetic timestamp.
func (e *Engine) elapsedMs() int64 { return e.now().Sub(e.start).Milliseconds() }

// GenerateSignature builds, serializes and encrypts the telemetry record for
// env and returns it wrapped as an encrypted-signature platform request.
// Side effects: env.Accuracy and env.MsSinceLastLocationFix, plus the
// session's accuracy fields, are overwritten from the first synthetic fix.
func (e *Engine) GenerateSignature(env *protocol.RequestEnvelope) (*protocol.PlatformRequest, error) {
	if env == nil {
		return nil, ErrNilEnvelope
	}
	if len(env.Requests) == 0 {
		return nil, ErrNoRequests
	}

	elapsed := e.elapsedMs()
	fixes := e.locationFixes(env, elapsed)

	record, err := e.buildRecord(env, fixes, elapsed)
	if err != nil {
		return nil, err
	}

	out, err := e.encryptRecord(record, elapsed)
	if err != nil {
		return nil, err
	}

	e.log.Debug("signature generated",
		"elapsed_ms", elapsed,
		"fixes", len(fixes),
		"requests", len(env.Requests),
	)
	return out, nil
}

// Sign generates the signature for env and attaches it to the envelope's
// platform requests.
func (e *Engine) Sign(env *protocol.RequestEnvelope) error {
	out, err := e.GenerateSignature(env)
	if err != nil {
		return err
	}
	env.PlatformRequests = append(env.PlatformRequests, out)
	return nil
}
