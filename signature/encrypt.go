package signature

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/alex0twery0/POGOLib/protocol"
)

// encryptRecord serializes the completed record to its canonical byte form,
// encrypts it keyed by the truncated elapsed time, and wraps the ciphertext
// as an encrypted-signature platform request. Pure function of
// (record, elapsedMs) apart from cipher internals.
func (e *Engine) encryptRecord(record *Record, elapsedMs int64) (*protocol.PlatformRequest, error) {
	plain, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("signature: marshal record: %w", err)
	}

	canonical, err := jcs.Transform(plain)
	if err != nil {
		return nil, fmt.Errorf("signature: canonicalize record: %w", err)
	}

	ciphertext, err := e.cipher.Encrypt(canonical, uint32(elapsedMs))
	if err != nil {
		return nil, fmt.Errorf("signature: encrypt record: %w", err)
	}

	return &protocol.PlatformRequest{
		Type:           protocol.TypeSendEncryptedSignature,
		RequestMessage: ciphertext,
	}, nil
}
