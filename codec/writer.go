package codec

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Writer is the encoding half of the traversal contract. An application
// value drives it with exactly the calls that match its shape, in a fixed
// order. Every call appends to the output immediately.
type Writer interface {
	WriteBool(v bool) error
	WriteUint8(v uint8) error
	WriteUint16(v uint16) error
	WriteUint32(v uint32) error
	WriteUint64(v uint64) error
	WriteUint128(v Uint128) error
	WriteInt8(v int8) error
	WriteInt16(v int16) error
	WriteInt32(v int32) error
	WriteInt64(v int64) error
	WriteInt128(v Int128) error
	WriteFloat32(v float32) error
	WriteFloat64(v float64) error
	// WriteChar writes r as its code point. Surrogates and values past
	// U+10FFFF fail with ErrInvalidChar.
	WriteChar(r rune) error
	WriteString(v string) error
	WriteBytes(v []byte) error
	// WriteSeqLen writes the length prefix of a sequence. The caller then
	// writes exactly n elements.
	WriteSeqLen(n int) error
	// WriteMapLen writes the length prefix of a map. The caller then writes
	// n key/value pairs, key first.
	WriteMapLen(n int) error
	// WriteOptionTag writes the discriminant of an optional value. When
	// present is true the caller writes the payload next.
	WriteOptionTag(present bool) error
	// WriteVariant writes the 0-based index of a tagged union variant. The
	// caller writes the variant payload next.
	WriteVariant(index uint32) error
	Config() Config
}

// Encoder is implemented by values that know how to drive a Writer.
type Encoder interface {
	Encode(w Writer) error
}

// Decoder is implemented by values that know how to rebuild themselves
// from a Reader.
type Decoder interface {
	Decode(r Reader) error
}

type EncodeDecoder interface {
	Encoder
	Decoder
}

type sink interface {
	write(p []byte) error
}

type bufferSink struct {
	buf []byte
}

func (s *bufferSink) write(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

type ioSink struct {
	w io.Writer
}

func (s *ioSink) write(p []byte) error {
	_, err := s.w.Write(p)
	return wrapIO(err)
}

// countSink discards output. The limiter already counts every byte.
type countSink struct{}

func (countSink) write(p []byte) error {
	return nil
}

type encoder struct {
	cfg     Config
	order   binary.ByteOrder
	varint  bool
	sink    sink
	limit   *limiter
	scratch [17]byte
}

var _ Writer = (*encoder)(nil)

func newEncoder(cfg Config, s sink) *encoder {
	return &encoder{
		cfg:    cfg,
		order:  cfg.ByteOrder(),
		varint: cfg.IntEncoding() == VarInt,
		sink:   s,
		limit:  newLimiter(cfg),
	}
}

// NewWriter returns a Writer that streams to w. The configured size limit
// applies to everything written through the returned Writer.
func NewWriter(w io.Writer, cfg Config) Writer {
	return newEncoder(cfg, &ioSink{w: w})
}

func (e *encoder) Config() Config {
	return e.cfg
}

func (e *encoder) write(p []byte) error {
	if err := e.limit.Claim(uint64(len(p))); err != nil {
		return err
	}
	return e.sink.write(p)
}

func (e *encoder) writeUvarint(v uint64) error {
	return e.write(AppendUvarint(e.scratch[:0], v, e.order))
}

func (e *encoder) WriteBool(v bool) error {
	e.scratch[0] = 0x00
	if v {
		e.scratch[0] = 0x01
	}
	return e.write(e.scratch[:1])
}

func (e *encoder) WriteUint8(v uint8) error {
	e.scratch[0] = v
	return e.write(e.scratch[:1])
}

func (e *encoder) WriteUint16(v uint16) error {
	if e.varint {
		return e.writeUvarint(uint64(v))
	}
	e.order.PutUint16(e.scratch[:2], v)
	return e.write(e.scratch[:2])
}

func (e *encoder) WriteUint32(v uint32) error {
	if e.varint {
		return e.writeUvarint(uint64(v))
	}
	e.order.PutUint32(e.scratch[:4], v)
	return e.write(e.scratch[:4])
}

func (e *encoder) WriteUint64(v uint64) error {
	if e.varint {
		return e.writeUvarint(v)
	}
	e.order.PutUint64(e.scratch[:8], v)
	return e.write(e.scratch[:8])
}

func (e *encoder) WriteUint128(v Uint128) error {
	if e.varint {
		return e.write(AppendUvarint128(e.scratch[:0], v, e.order))
	}
	putUint128(e.scratch[:16], e.order, v)
	return e.write(e.scratch[:16])
}

func (e *encoder) WriteInt8(v int8) error {
	return e.WriteUint8(uint8(v))
}

func (e *encoder) WriteInt16(v int16) error {
	if e.varint {
		return e.writeUvarint(ZigZag(int64(v)))
	}
	return e.WriteUint16(uint16(v))
}

func (e *encoder) WriteInt32(v int32) error {
	if e.varint {
		return e.writeUvarint(ZigZag(int64(v)))
	}
	return e.WriteUint32(uint32(v))
}

func (e *encoder) WriteInt64(v int64) error {
	if e.varint {
		return e.writeUvarint(ZigZag(v))
	}
	return e.WriteUint64(uint64(v))
}

func (e *encoder) WriteInt128(v Int128) error {
	if e.varint {
		return e.WriteUint128(ZigZag128(v))
	}
	return e.WriteUint128(Uint128(v))
}

func (e *encoder) WriteFloat32(v float32) error {
	e.order.PutUint32(e.scratch[:4], math.Float32bits(v))
	return e.write(e.scratch[:4])
}

func (e *encoder) WriteFloat64(v float64) error {
	e.order.PutUint64(e.scratch[:8], math.Float64bits(v))
	return e.write(e.scratch[:8])
}

func (e *encoder) WriteChar(r rune) error {
	if !utf8.ValidRune(r) {
		return errors.Wrapf(ErrInvalidChar, "cannot encode code point 0x%x", r)
	}
	return e.WriteUint32(uint32(r))
}

func (e *encoder) WriteString(v string) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return e.write([]byte(v))
}

func (e *encoder) WriteBytes(v []byte) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return e.write(v)
}

func (e *encoder) WriteSeqLen(n int) error {
	return e.writeLen(n)
}

func (e *encoder) WriteMapLen(n int) error {
	return e.writeLen(n)
}

func (e *encoder) writeLen(n int) error {
	if n < 0 {
		return errors.Errorf("negative length %d", n)
	}
	return e.WriteUint64(uint64(n))
}

func (e *encoder) WriteOptionTag(present bool) error {
	return e.WriteBool(present)
}

func (e *encoder) WriteVariant(index uint32) error {
	return e.WriteUint32(index)
}
