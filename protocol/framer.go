package protocol

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	ns "github.com/mwath/mcli/net_structures"
)

// Frame is one fully extracted, decrypted, decompressed packet: a bare
// packet id followed by its field bytes, ready for a Reader.
type Frame struct {
	PacketID int32
	Data     []byte
}

// Framer is the framing state machine described as the protocol's "hard
// core": it turns a stream of arbitrary-sized byte chunks into a sequence
// of complete Frames, tracking a length-prefixed header that may itself
// arrive split across chunks, and a payload that may arrive split across
// any number of chunks or exceed a single chunk outright.
//
// Framer does not perform decryption — that happens transparently on the
// underlying net.Conn (see Conn) before bytes ever reach Feed, keeping
// framing decoupled from cipher state the way §4.D's layering requires.
// It does own decompression, since the compression envelope is framing's
// concern, not the transport's.
//
// The reference implementation this is ported from keeps a fixed backing
// buffer plus a separate "_waiting" spillover object for a payload larger
// than that buffer. A growable slice subsumes both cases here — it is the
// buffer-reuse alternative the wire format explicitly permits — while
// preserving the same partial-frame semantics: feeding a packet one byte
// at a time yields the same Frames as feeding it in one chunk.
type Framer struct {
	buf []byte
	pos int

	// CompressionThreshold mirrors the connection's compression state; -1
	// disables compression. It is mutated directly by the state machine
	// on SetCompression — framing never swaps implementations.
	CompressionThreshold int
}

// NewFramer returns a Framer with compression disabled.
func NewFramer() *Framer {
	return &Framer{CompressionThreshold: -1}
}

// Feed appends a newly-received chunk (pass nil to drain without adding
// bytes) and extracts at most one Frame. It deliberately does not drain
// every complete frame sitting in the buffer in one call: a packet such as
// SetCompression changes how the *next* frame's envelope must be parsed,
// and that side effect is applied by the caller between Feed calls. Feeding
// one frame at a time keeps that ordering correct without Framer needing to
// know anything about packet semantics. Call Feed(nil) in a loop after
// appending a chunk to drain every frame it completed.
//
// Returns (frame, true, nil) when a frame was extracted, (Frame{}, false,
// nil) when more bytes are needed, or a non-nil error on malformed input.
func (f *Framer) Feed(chunk []byte) (Frame, bool, error) {
	f.buf = append(f.buf, chunk...)

	if f.pos >= len(f.buf) {
		f.compact()
		return Frame{}, false, nil
	}

	var length ns.VarInt
	n, err := length.FromBytes(ns.ByteArray(f.buf[f.pos:]))
	if err != nil {
		if errors.Is(err, ns.ErrVarIntIncomplete) {
			return Frame{}, false, nil
		}
		return Frame{}, false, fmt.Errorf("%w: %v", ErrMalformedVarint, err)
	}

	if int(length) < 0 {
		return Frame{}, false, fmt.Errorf("%w: negative frame length", ErrMalformedVarint)
	}

	payloadStart := f.pos + n
	payloadEnd := payloadStart + int(length)
	if payloadEnd > len(f.buf) {
		// header decoded but payload not fully arrived yet; retain the
		// header and wait for more bytes.
		return Frame{}, false, nil
	}

	payload := f.buf[payloadStart:payloadEnd]
	frame, err := f.unwrap(payload)
	if err != nil {
		return Frame{}, false, err
	}
	f.pos = payloadEnd
	f.compact()
	return frame, true, nil
}

// compact drops already-consumed bytes; once the cursor catches up with
// the end of the buffer both reset to zero, the same no-residual-frame
// reset the source's buffer_updated performs.
func (f *Framer) compact() {
	if f.pos == 0 {
		return
	}
	if f.pos == len(f.buf) {
		f.buf = f.buf[:0]
		f.pos = 0
		return
	}
	remaining := copy(f.buf, f.buf[f.pos:])
	f.buf = f.buf[:remaining]
	f.pos = 0
}

// unwrap applies the decompression envelope (if enabled) and splits the
// packet id off the front of the resulting body.
func (f *Framer) unwrap(payload []byte) (Frame, error) {
	body := payload

	if f.CompressionThreshold >= 0 {
		var dataLength ns.VarInt
		n, err := dataLength.FromBytes(ns.ByteArray(payload))
		if err != nil {
			return Frame{}, fmt.Errorf("%w: reading data length: %v", ErrCompressionError, err)
		}
		rest := payload[n:]

		if dataLength == 0 {
			body = rest
		} else {
			decompressed, err := decompress(rest, int(dataLength))
			if err != nil {
				return Frame{}, fmt.Errorf("%w: %v", ErrCompressionError, err)
			}
			body = decompressed
		}
	}

	var packetID ns.VarInt
	n, err := packetID.FromBytes(ns.ByteArray(body))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: reading packet id: %v", ErrMalformedVarint, err)
	}

	return Frame{PacketID: int32(packetID), Data: body[n:]}, nil
}

func decompress(compressed []byte, expectedLength int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(out) != expectedLength {
		return nil, fmt.Errorf("decompressed to %d bytes, expected %d", len(out), expectedLength)
	}
	return out, nil
}

func compress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

// EncodeFrame assembles the outbound byte sequence for one packet body
// (packet id varint followed by its encoded fields), applying the
// compression envelope and the length prefix. Encryption, if enabled, is
// applied by the caller's Conn when these bytes are written.
func EncodeFrame(body []byte, compressionThreshold int) ([]byte, error) {
	var envelope []byte

	if compressionThreshold >= 0 {
		if len(body) >= compressionThreshold {
			dataLengthBytes, err := ns.VarInt(len(body)).ToBytes()
			if err != nil {
				return nil, err
			}
			envelope = append(envelope, dataLengthBytes...)
			envelope = append(envelope, compress(body)...)
		} else {
			zeroBytes, err := ns.VarInt(0).ToBytes()
			if err != nil {
				return nil, err
			}
			envelope = append(envelope, zeroBytes...)
			envelope = append(envelope, body...)
		}
	} else {
		envelope = body
	}

	lengthBytes, err := ns.VarInt(len(envelope)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, envelope...), nil
}
