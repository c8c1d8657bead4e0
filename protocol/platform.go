package protocol

// PlatformRequestType discriminates platform-level request payloads.
type PlatformRequestType int32

// TypeSendEncryptedSignature marks a payload as an encrypted signature
// record. Protocol constant, not tunable.
const TypeSendEncryptedSignature PlatformRequestType = 6

// PlatformRequest is a typed platform-level payload attached to an envelope
// alongside the regular sub-requests.
type PlatformRequest struct {
	Type           PlatformRequestType
	RequestMessage []byte
}
