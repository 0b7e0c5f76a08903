package protocol

import (
	"fmt"

	ns "github.com/mwath/mcli/net_structures"
)

// Writer accumulates an append buffer for outbound primitive writes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) append(v interface{ ToBytes() (ns.ByteArray, error) }) error {
	b, err := v.ToBytes()
	if err != nil {
		return err
	}
	w.buf = append(w.buf, b...)
	return nil
}

func (w *Writer) WriteBool(v bool) error     { return w.append(ns.Boolean(v)) }
func (w *Writer) WriteByte(v int8) error     { return w.append(ns.Byte(v)) }
func (w *Writer) WriteUByte(v uint8) error   { return w.append(ns.UnsignedByte(v)) }
func (w *Writer) WriteShort(v int16) error   { return w.append(ns.Short(v)) }
func (w *Writer) WriteUShort(v uint16) error { return w.append(ns.UnsignedShort(v)) }
func (w *Writer) WriteInt(v int32) error     { return w.append(ns.Int(v)) }
func (w *Writer) WriteLong(v int64) error    { return w.append(ns.Long(v)) }
func (w *Writer) WriteFloat(v float32) error { return w.append(ns.Float(v)) }
func (w *Writer) WriteDouble(v float64) error {
	return w.append(ns.Double(v))
}
func (w *Writer) WriteVarInt(v int32) error  { return w.append(ns.VarInt(v)) }
func (w *Writer) WriteVarLong(v int64) error { return w.append(ns.VarLong(v)) }
func (w *Writer) WriteString(v string) error { return w.append(ns.String(v)) }

// WriteConstrainedString validates v against c before writing it, returning
// ErrConstraint (wrapping the underlying detail) on violation.
func (w *Writer) WriteConstrainedString(v string, c ns.StringConstraint) error {
	if err := c.Check(ns.String(v)); err != nil {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return w.append(ns.String(v))
}

func (w *Writer) WriteIdentifier(v string) error { return w.append(ns.Identifier(v)) }
func (w *Writer) WriteUUID(v ns.UUID) error       { return w.append(v) }
func (w *Writer) WritePosition(v ns.Position) error {
	return w.append(v)
}
func (w *Writer) WriteAngle(v ns.Angle) error { return w.append(v) }

// WriteByteArray writes a VarInt-length-prefixed byte array.
func (w *Writer) WriteByteArray(v []byte) error {
	return w.append(ns.PrefixedByteArray(v))
}

// WriteFixed writes raw bytes with no length prefix.
func (w *Writer) WriteFixed(v []byte) {
	w.buf = append(w.buf, v...)
}

func (w *Writer) WriteNBT(v ns.NBT) error { return w.append(v) }
