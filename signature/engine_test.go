package signature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex0twery0/POGOLib/protocol"
	"github.com/alex0twery0/POGOLib/session"
)

var testSessionHash = [SessionHashSize]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// pinnedEngine builds an engine whose randomness, session hash and clock are
// all pinned, so its output depends only on the envelope.
func pinnedEngine(t *testing.T, seed int64, hash [SessionHashSize]byte) (*Engine, *fakeClock) {
	t.Helper()
	sess := session.NewSeeded(52.3740, 4.9010, seed)
	clock := newFakeClock()
	e, err := NewEngine(sess, WithSessionHash(hash), WithTimeSource(clock.now))
	require.NoError(t, err)
	return e, clock
}

func TestNewEngineNilSession(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrNilSession)
}

func TestGenerateSignatureNilEnvelope(t *testing.T) {
	e, _ := pinnedEngine(t, 1, testSessionHash)
	_, err := e.GenerateSignature(nil)
	assert.ErrorIs(t, err, ErrNilEnvelope)
}

func TestGenerateSignatureEmptyEnvelope(t *testing.T) {
	e, _ := pinnedEngine(t, 1, testSessionHash)

	out, err := e.GenerateSignature(&protocol.RequestEnvelope{})
	assert.ErrorIs(t, err, ErrNoRequests)
	assert.Nil(t, out)
}

func TestGenerateSignatureDeterministicUnderPinnedSeed(t *testing.T) {
	e1, c1 := pinnedEngine(t, 42, testSessionHash)
	e2, c2 := pinnedEngine(t, 42, testSessionHash)

	c1.advance(5 * time.Second)
	c2.advance(5 * time.Second)

	out1, err := e1.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)
	out2, err := e2.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)

	assert.Equal(t, protocol.TypeSendEncryptedSignature, out1.Type)
	assert.Equal(t, out1.RequestMessage, out2.RequestMessage)
}

func TestGenerateSignatureConsumesRandomness(t *testing.T) {
	e, clock := pinnedEngine(t, 42, testSessionHash)
	clock.advance(5 * time.Second)

	out1, err := e.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)
	out2, err := e.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)

	// Fresh draws per call: two signatures over the same envelope content
	// must not repeat.
	assert.NotEqual(t, out1.RequestMessage, out2.RequestMessage)
}

func TestSessionHashInfluencesCiphertext(t *testing.T) {
	other := testSessionHash
	other[0] ^= 0xFF

	e1, c1 := pinnedEngine(t, 42, testSessionHash)
	e2, c2 := pinnedEngine(t, 42, other)

	c1.advance(time.Second)
	c2.advance(time.Second)

	out1, err := e1.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)
	out2, err := e2.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)

	assert.NotEqual(t, out1.RequestMessage, out2.RequestMessage)
}

func TestSessionHashStableWithinEngine(t *testing.T) {
	e, clock := pinnedEngine(t, 11, testSessionHash)
	before := e.SessionHash()

	clock.advance(3 * time.Second)
	_, err := e.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)
	_, err = e.GenerateSignature(oneRequestEnvelope())
	require.NoError(t, err)

	assert.Equal(t, before, e.SessionHash())
}

func TestSessionHashDiffersAcrossEngines(t *testing.T) {
	e1, err := NewEngine(session.New(0, 0))
	require.NoError(t, err)
	e2, err := NewEngine(session.New(0, 0))
	require.NoError(t, err)

	assert.NotEqual(t, e1.SessionHash(), e2.SessionHash())
}

func TestSignAttachesPlatformRequest(t *testing.T) {
	e, clock := pinnedEngine(t, 9, testSessionHash)
	clock.advance(2 * time.Second)

	env := oneRequestEnvelope()
	require.NoError(t, e.Sign(env))

	require.Len(t, env.PlatformRequests, 1)
	assert.Equal(t, protocol.TypeSendEncryptedSignature, env.PlatformRequests[0].Type)
	assert.NotEmpty(t, env.PlatformRequests[0].RequestMessage)
	// The envelope accuracy now reflects the synthetic fix.
	assert.NotZero(t, env.Accuracy)
}

func TestGenerateSignatureScenarioSingleRequest(t *testing.T) {
	const elapsed = 5 * time.Second
	e, clock := pinnedEngine(t, 1234, testSessionHash)
	clock.advance(elapsed)

	env := oneRequestEnvelope()

	// Reproduce the record the engine will build to assert the observable
	// contract in one place.
	e2, c2 := pinnedEngine(t, 1234, testSessionHash)
	c2.advance(elapsed)
	env2 := oneRequestEnvelope()
	fixes := e2.locationFixes(env2, 5000)
	record, err := e2.buildRecord(env2, fixes, 5000)
	require.NoError(t, err)

	out, err := e.GenerateSignature(env)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Len(t, record.RequestHashes, 1)
	assert.Equal(t, Int64String(-8408506833887075802), record.Unknown25)
	assert.Equal(t, record.LocationFixes[0].HorizontalAccuracy, env2.Accuracy)
	assert.Equal(t, env2.Accuracy, env.Accuracy)
	assert.Equal(t, env2.MsSinceLastLocationFix, env.MsSinceLastLocationFix)
}
