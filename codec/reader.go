package codec

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

// Reader is the decoding half of the traversal contract. Callers request
// values in exactly the order their shape was written.
type Reader interface {
	ReadBool() (bool, error)
	ReadUint8() (uint8, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	ReadUint128() (Uint128, error)
	ReadInt8() (int8, error)
	ReadInt16() (int16, error)
	ReadInt32() (int32, error)
	ReadInt64() (int64, error)
	ReadInt128() (Int128, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
	ReadChar() (rune, error)
	// ReadString returns a string backed by its own storage.
	ReadString() (string, error)
	// ReadBytes returns a newly allocated copy of the payload.
	ReadBytes() ([]byte, error)
	// ReadBorrowedString returns a string that shares memory with the
	// input buffer. It is only valid while that buffer is alive and
	// unmodified. Stream readers fail with ErrBorrowUnavailable.
	ReadBorrowedString() (string, error)
	// ReadBorrowedBytes returns a sub-slice of the input buffer without
	// copying. Stream readers fail with ErrBorrowUnavailable.
	ReadBorrowedBytes() ([]byte, error)
	// ReadSeqLen reads a sequence length prefix. The count has already been
	// checked against the remaining size budget, assuming each element
	// occupies at least one byte.
	ReadSeqLen() (int, error)
	ReadMapLen() (int, error)
	// ReadSeqLenOf and ReadMapLenOf read a length prefix whose elements
	// occupy at least width bytes each. A width of zero skips the budget
	// check, for elements that encode to nothing.
	ReadSeqLenOf(width uint64) (int, error)
	ReadMapLenOf(width uint64) (int, error)
	ReadOptionTag() (bool, error)
	// ReadVariant reads a union variant index and rejects any index that is
	// not below count.
	ReadVariant(count uint32) (uint32, error)
	// Enter records one more level of nesting and fails with ErrDepthLimit
	// once the configured depth is exceeded. Every successful Enter must be
	// paired with Leave.
	Enter() error
	Leave()
	Config() Config
}

type decoder struct {
	cfg    Config
	order  binary.ByteOrder
	varint bool
	src    source
	limit  *limiter
	depth  int
}

var _ Reader = (*decoder)(nil)

func newDecoder(cfg Config, src source) *decoder {
	return &decoder{
		cfg:    cfg,
		order:  cfg.ByteOrder(),
		varint: cfg.IntEncoding() == VarInt,
		src:    src,
		limit:  newLimiter(cfg),
	}
}

// SliceReader decodes from an in-memory buffer and can hand out borrowed
// views of it.
type SliceReader struct {
	*decoder
	src *sliceSource
}

func NewSliceReader(data []byte, cfg Config) *SliceReader {
	src := &sliceSource{buf: data}
	return &SliceReader{
		decoder: newDecoder(cfg, src),
		src:     src,
	}
}

// Len returns the number of unread bytes.
func (s *SliceReader) Len() int {
	return len(s.src.buf)
}

// BytesRead returns the number of bytes consumed so far.
func (s *SliceReader) BytesRead() uint64 {
	return s.limit.Count()
}

// Finish applies the trailing bytes policy once the caller has decoded
// everything it expects.
func (s *SliceReader) Finish() error {
	if s.cfg.TrailingBytes() == AllowTrailing || len(s.src.buf) == 0 {
		return nil
	}
	logger.Debug("rejecting trailing bytes", "trailing", len(s.src.buf))
	return errors.Wrapf(ErrTrailingBytes, "%d bytes left over", len(s.src.buf))
}

// StreamReader decodes from an io.Reader, consuming no more bytes than the
// requested values occupy.
type StreamReader struct {
	*decoder
}

func NewStreamReader(r io.Reader, cfg Config) *StreamReader {
	return &StreamReader{
		decoder: newDecoder(cfg, &streamSource{r: r}),
	}
}

func (s *StreamReader) BytesRead() uint64 {
	return s.limit.Count()
}

func (d *decoder) Config() Config {
	return d.cfg
}

func (d *decoder) read(n int) ([]byte, error) {
	if err := d.limit.Claim(uint64(n)); err != nil {
		return nil, err
	}
	return d.src.next(n)
}

func (d *decoder) readUvarint(maxTag byte, target string) (Uint128, error) {
	b, err := d.read(1)
	if err != nil {
		return Uint128{}, err
	}
	tag := b[0]
	width, err := TagWidth(tag)
	if err != nil {
		return Uint128{}, err
	}
	if width == 0 {
		return Uint128From64(uint64(tag)), nil
	}
	if tag > maxTag {
		return Uint128{}, errors.Wrapf(ErrInvalidTag, "varint tag 0x%02x too wide for %s", tag, target)
	}
	payload, err := d.read(width)
	if err != nil {
		return Uint128{}, err
	}
	return uvarintPayload(tag, payload, d.order), nil
}

func (d *decoder) ReadBool() (bool, error) {
	b, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidBool, "0x%02x", b[0])
	}
}

func (d *decoder) ReadUint8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) ReadUint16() (uint16, error) {
	if d.varint {
		v, err := d.readUvarint(TagU16, "u16")
		return uint16(v.Lo), err
	}
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(b), nil
}

func (d *decoder) ReadUint32() (uint32, error) {
	if d.varint {
		v, err := d.readUvarint(TagU32, "u32")
		return uint32(v.Lo), err
	}
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(b), nil
}

func (d *decoder) ReadUint64() (uint64, error) {
	if d.varint {
		v, err := d.readUvarint(TagU64, "u64")
		return v.Lo, err
	}
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(b), nil
}

func (d *decoder) ReadUint128() (Uint128, error) {
	if d.varint {
		return d.readUvarint(TagU128, "u128")
	}
	b, err := d.read(16)
	if err != nil {
		return Uint128{}, err
	}
	return getUint128(b, d.order), nil
}

func (d *decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

func (d *decoder) ReadInt16() (int16, error) {
	if d.varint {
		v, err := d.readUvarint(TagU16, "i16")
		return int16(UnZigZag(v.Lo)), err
	}
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *decoder) ReadInt32() (int32, error) {
	if d.varint {
		v, err := d.readUvarint(TagU32, "i32")
		return int32(UnZigZag(v.Lo)), err
	}
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *decoder) ReadInt64() (int64, error) {
	if d.varint {
		v, err := d.readUvarint(TagU64, "i64")
		return UnZigZag(v.Lo), err
	}
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *decoder) ReadInt128() (Int128, error) {
	v, err := d.ReadUint128()
	if err != nil {
		return Int128{}, err
	}
	if d.varint {
		return UnZigZag128(v), nil
	}
	return Int128(v), nil
}

func (d *decoder) ReadFloat32() (float32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(d.order.Uint32(b)), nil
}

func (d *decoder) ReadFloat64() (float64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(d.order.Uint64(b)), nil
}

func (d *decoder) ReadChar() (rune, error) {
	v, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if v > math.MaxInt32 || !utf8.ValidRune(r) {
		return 0, errors.Wrapf(ErrInvalidChar, "code point 0x%x", v)
	}
	return r, nil
}

func (d *decoder) readLen() (int, error) {
	v, err := d.ReadUint64()
	if err != nil {
		return 0, err
	}
	if v > uint64(math.MaxInt) {
		return 0, errors.Wrapf(ErrSizeLimit, "length %d is not addressable", v)
	}
	return int(v), nil
}

// readPayloadLen reads a byte payload length and claims it in full before
// anything is allocated.
func (d *decoder) readPayloadLen() (int, error) {
	n, err := d.readLen()
	if err != nil {
		return 0, err
	}
	if err := d.limit.Claim(uint64(n)); err != nil {
		return 0, err
	}
	return n, nil
}

func (d *decoder) ReadBytes() ([]byte, error) {
	n, err := d.readPayloadLen()
	if err != nil {
		return nil, err
	}
	return d.src.take(n)
}

func (d *decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return bytesToString(b), nil
}

func (d *decoder) ReadBorrowedBytes() ([]byte, error) {
	n, err := d.readPayloadLen()
	if err != nil {
		return nil, err
	}
	return d.src.borrow(n)
}

func (d *decoder) ReadBorrowedString() (string, error) {
	b, err := d.ReadBorrowedBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return bytesToString(b), nil
}

func (d *decoder) ReadSeqLen() (int, error) {
	return d.readCount("sequence", 1)
}

func (d *decoder) ReadMapLen() (int, error) {
	return d.readCount("map", 1)
}

func (d *decoder) ReadSeqLenOf(width uint64) (int, error) {
	return d.readCount("sequence", width)
}

func (d *decoder) ReadMapLenOf(width uint64) (int, error) {
	return d.readCount("map", width)
}

// readCount reads a collection length. n elements of at least width bytes
// each that cannot fit in the remaining budget are rejected before the
// caller allocates anything for them.
func (d *decoder) readCount(what string, width uint64) (int, error) {
	n, err := d.readLen()
	if err != nil {
		return 0, err
	}
	if width == 0 {
		return n, nil
	}
	if err := d.limit.CheckCount(uint64(n), width); err != nil {
		return 0, errors.Wrapf(err, "%s of %d elements", what, n)
	}
	return n, nil
}

func (d *decoder) ReadOptionTag() (bool, error) {
	b, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidTag, "option discriminant 0x%02x", b[0])
	}
}

func (d *decoder) ReadVariant(count uint32) (uint32, error) {
	idx, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	if idx >= count {
		return 0, errors.Wrapf(ErrInvalidTag, "variant index %d out of range for %d variants", idx, count)
	}
	return idx, nil
}

func (d *decoder) Enter() error {
	limit := d.cfg.DepthLimit()
	if limit > 0 && d.depth >= limit {
		logger.Debug("rejecting nesting depth", "limit", limit)
		return errors.Wrapf(ErrDepthLimit, "nesting deeper than %d", limit)
	}
	d.depth++
	return nil
}

func (d *decoder) Leave() {
	if d.depth > 0 {
		d.depth--
	}
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
