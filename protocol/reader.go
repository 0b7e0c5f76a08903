package protocol

import (
	"errors"
	"fmt"

	ns "github.com/mwath/mcli/net_structures"
)

// Reader holds a byte buffer and a cursor. Every primitive read advances the
// cursor by exactly the number of bytes consumed; a read past the end of
// the buffer fails with ErrShortRead.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential primitive reads. data is not copied;
// callers must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Rest returns every byte from the cursor to the end without advancing it,
// for fields of type `remaining`.
func (r *Reader) Rest() []byte {
	return r.data[r.pos:]
}

// ReadRemaining consumes and returns every byte from the cursor to the end.
func (r *Reader) ReadRemaining() ns.ByteArray {
	out := ns.ByteArray(r.data[r.pos:])
	r.pos = len(r.data)
	return out
}

func wrapFieldErr(err error) error {
	if errors.Is(err, ns.ErrVarIntTooBig) || errors.Is(err, ns.ErrVarLongTooBig) {
		return fmt.Errorf("%w: %v", ErrMalformedVarint, err)
	}
	if errors.Is(err, ns.ErrInvalidUTF8) {
		return fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	if errors.Is(err, ns.ErrInvalidString) {
		return fmt.Errorf("%w: %v", ErrInvalidString, err)
	}
	return fmt.Errorf("%w: %v", ErrShortRead, err)
}

func (r *Reader) consume(v interface{ FromBytes(ns.ByteArray) (int, error) }) error {
	n, err := v.FromBytes(ns.ByteArray(r.data[r.pos:]))
	if err != nil {
		return wrapFieldErr(err)
	}
	r.pos += n
	return nil
}

func (r *Reader) ReadBool() (bool, error) {
	var v ns.Boolean
	if err := r.consume(&v); err != nil {
		return false, err
	}
	return bool(v), nil
}

func (r *Reader) ReadByte() (int8, error) {
	var v ns.Byte
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int8(v), nil
}

func (r *Reader) ReadUByte() (uint8, error) {
	var v ns.UnsignedByte
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func (r *Reader) ReadShort() (int16, error) {
	var v ns.Short
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int16(v), nil
}

func (r *Reader) ReadUShort() (uint16, error) {
	var v ns.UnsignedShort
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func (r *Reader) ReadInt() (int32, error) {
	var v ns.Int
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (r *Reader) ReadLong() (int64, error) {
	var v ns.Long
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *Reader) ReadFloat() (float32, error) {
	var v ns.Float
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return float32(v), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	var v ns.Double
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return float64(v), nil
}

func (r *Reader) ReadVarInt() (int32, error) {
	var v ns.VarInt
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (r *Reader) ReadVarLong() (int64, error) {
	var v ns.VarLong
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *Reader) ReadString() (string, error) {
	var v ns.String
	if err := r.consume(&v); err != nil {
		return "", err
	}
	return string(v), nil
}

// ReadConstrainedString reads a string and validates it against c, returning
// ErrConstraint (wrapping the underlying detail) on violation.
func (r *Reader) ReadConstrainedString(c ns.StringConstraint) (string, error) {
	var v ns.String
	if err := r.consume(&v); err != nil {
		return "", err
	}
	if err := c.Check(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return string(v), nil
}

func (r *Reader) ReadIdentifier() (string, error) {
	var v ns.Identifier
	if err := r.consume(&v); err != nil {
		return "", err
	}
	return string(v), nil
}

func (r *Reader) ReadUUID() (ns.UUID, error) {
	var v ns.UUID
	if err := r.consume(&v); err != nil {
		return ns.UUID{}, err
	}
	return v, nil
}

func (r *Reader) ReadPosition() (ns.Position, error) {
	var v ns.Position
	if err := r.consume(&v); err != nil {
		return ns.Position{}, err
	}
	return v, nil
}

func (r *Reader) ReadAngle() (ns.Angle, error) {
	var v ns.Angle
	if err := r.consume(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// ReadByteArray reads a VarInt-length-prefixed byte array.
func (r *Reader) ReadByteArray() ([]byte, error) {
	var v ns.PrefixedByteArray
	if err := r.consume(&v); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

// ReadFixed reads exactly n raw bytes with no length prefix.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortRead, n, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func (r *Reader) ReadNBT() (ns.NBT, error) {
	var v ns.NBT
	if err := r.consume(&v); err != nil {
		return ns.NBT{}, err
	}
	return v, nil
}
