// Package protocol models the slice of the external RPC envelope the
// signature engine binds to. The full wire schema lives server-side; only
// the fields the signature covers are represented here.
package protocol

import (
	"bytes"
	"encoding/binary"
)

// RequestType identifies one sub-request inside an envelope.
type RequestType int32

// Request is one outbound sub-request. Payload is the externally serialized
// message body; the signature hashes Marshal output, not Payload alone.
type Request struct {
	Type    RequestType
	Payload []byte
}

// Marshal returns the deterministic byte form of the request: big-endian
// type followed by the payload. Hash inputs must never depend on host byte
// order.
func (r *Request) Marshal() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 4+len(r.Payload)))
	binary.Write(buf, binary.BigEndian, int32(r.Type))
	buf.Write(r.Payload)
	return buf.Bytes()
}

// AuthTicket is the server-issued session ticket.
type AuthTicket struct {
	Start             []byte
	ExpireTimestampMs uint64
	End               []byte
}

// Marshal returns the deterministic byte form of the ticket.
func (t *AuthTicket) Marshal() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 8+len(t.Start)+len(t.End)))
	buf.Write(t.Start)
	binary.Write(buf, binary.BigEndian, t.ExpireTimestampMs)
	buf.Write(t.End)
	return buf.Bytes()
}

// AuthInfo is the provider token used before a ticket has been issued.
type AuthInfo struct {
	Provider string
	Token    string
	Unknown2 int32
}

// Marshal returns the deterministic byte form of the auth info.
func (a *AuthInfo) Marshal() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(a.Provider)+len(a.Token)+4))
	buf.WriteString(a.Provider)
	buf.WriteString(a.Token)
	binary.Write(buf, binary.BigEndian, a.Unknown2)
	return buf.Bytes()
}

// RequestEnvelope is the outbound RPC envelope being signed. Accuracy and
// MsSinceLastLocationFix are overwritten by the engine from the first
// synthetic fix before transmission.
type RequestEnvelope struct {
	StatusCode             int32
	RequestID              uint64
	Latitude               float64
	Longitude              float64
	Accuracy               float64
	AuthTicket             *AuthTicket
	AuthInfo               *AuthInfo
	Requests               []*Request
	MsSinceLastLocationFix int64
	PlatformRequests       []*PlatformRequest
}

// TicketBytes returns the serialized ticket if one has been issued,
// otherwise the serialized auth info, otherwise nil. This is the hash key
// source for every location and request hash.
func (e *RequestEnvelope) TicketBytes() []byte {
	if e.AuthTicket != nil {
		return e.AuthTicket.Marshal()
	}
	if e.AuthInfo != nil {
		return e.AuthInfo.Marshal()
	}
	return nil
}
