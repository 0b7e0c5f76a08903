// Package protocol implements the Minecraft Java Edition protocol engine:
// packet framing with optional AES/CFB8 encryption and zlib compression, a
// declarative packet schema/registry, the four-state connection state
// machine, and the dispatcher that routes decoded packets to waiters.
package protocol

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the protocol core. Codec-level decode failures
// and compression/encryption failures are fatal for the connection; the
// caller is responsible for tearing down the transport on any of these.
var (
	// ErrMalformedVarint is returned when a varint/varlong's continuation
	// bit is still set past the maximum allowed byte count.
	ErrMalformedVarint = errors.New("protocol: malformed varint")
	// ErrShortRead is returned when a read runs past the end of the
	// available buffer.
	ErrShortRead = errors.New("protocol: short read")
	// ErrInvalidString is returned when a string field fails to decode,
	// independent of UTF-8 validity (e.g. a negative or overlong length).
	ErrInvalidString = errors.New("protocol: invalid string")
	// ErrInvalidUTF8 is returned when a string field decodes to bytes that
	// are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("protocol: invalid UTF-8")
	// ErrCompressionError indicates the compression envelope desynchronized:
	// a zlib stream failed to inflate to its declared dataLength.
	ErrCompressionError = errors.New("protocol: compression error")
	// ErrEncryptionError indicates an RSA/AES failure during the online-mode
	// handshake.
	ErrEncryptionError = errors.New("protocol: encryption error")
	// ErrProtocolError indicates an operation was attempted in the wrong
	// connection state (e.g. sending a login packet while in status).
	ErrProtocolError = errors.New("protocol: wrong state for operation")
	// ErrDisconnected is delivered to all pending waiters when the
	// transport closes.
	ErrDisconnected = errors.New("protocol: disconnected")
	// ErrTimeout is returned to a single waiter whose deadline elapsed.
	ErrTimeout = errors.New("protocol: wait_for timeout")
	// ErrAuthFailure is surfaced from the authentication collaborator.
	ErrAuthFailure = errors.New("protocol: authentication failed")
	// ErrDuplicateSchema is a hard error raised at registry-construction
	// time when two schemas claim the same (state, direction, id).
	ErrDuplicateSchema = errors.New("protocol: duplicate packet registration")
	// ErrConstraint is returned when a field fails its declared constraint
	// (e.g. a username outside its length bounds).
	ErrConstraint = errors.New("protocol: field constraint violated")
	// ErrHandshakeOrder is returned when EncryptionRequest arrives after
	// compression has already been activated; the canonical ordering is
	// encryption before compression and this implementation fails fast
	// rather than silently re-ordering.
	ErrHandshakeOrder = errors.New("protocol: encryption requested after compression was already active")
)

// UnknownPacketError describes a frame whose (state, direction, id) has no
// registered schema. It is non-fatal: the frame is consumed and discarded,
// and this value is only useful for logging by a higher layer.
type UnknownPacketError struct {
	State     State
	Direction Direction
	ID        int32
}

func (e *UnknownPacketError) Error() string {
	return fmt.Sprintf("protocol: unknown packet %s/%s/0x%02X", e.State, e.Direction, e.ID)
}
