package codec

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Varint tags. Values up to SingleByteMax are written as themselves; larger
// values are written as a tag followed by a fixed-width payload in the
// configured byte order. TagReserved is never produced and never accepted.
const (
	SingleByteMax byte = 250
	TagU16        byte = 0xfb
	TagU32        byte = 0xfc
	TagU64        byte = 0xfd
	TagU128       byte = 0xfe
	TagReserved   byte = 0xff
)

// AppendUvarint appends the minimal varint encoding of v to dst.
func AppendUvarint(dst []byte, v uint64, order binary.ByteOrder) []byte {
	var buf [8]byte
	switch {
	case v <= uint64(SingleByteMax):
		return append(dst, byte(v))
	case v <= math.MaxUint16:
		order.PutUint16(buf[:2], uint16(v))
		return append(append(dst, TagU16), buf[:2]...)
	case v <= math.MaxUint32:
		order.PutUint32(buf[:4], uint32(v))
		return append(append(dst, TagU32), buf[:4]...)
	default:
		order.PutUint64(buf[:8], v)
		return append(append(dst, TagU64), buf[:8]...)
	}
}

// AppendUvarint128 is AppendUvarint for 128-bit values.
func AppendUvarint128(dst []byte, v Uint128, order binary.ByteOrder) []byte {
	if v.IsUint64() {
		return AppendUvarint(dst, v.Lo, order)
	}
	var buf [16]byte
	putUint128(buf[:], order, v)
	return append(append(dst, TagU128), buf[:]...)
}

// UvarintSize returns the number of bytes AppendUvarint writes for v.
func UvarintSize(v uint64) int {
	switch {
	case v <= uint64(SingleByteMax):
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

func UvarintSize128(v Uint128) int {
	if v.IsUint64() {
		return UvarintSize(v.Lo)
	}
	return 17
}

// TagWidth returns the payload width that follows a varint tag byte, or 0
// for single-byte values.
func TagWidth(tag byte) (int, error) {
	switch {
	case tag <= SingleByteMax:
		return 0, nil
	case tag == TagU16:
		return 2, nil
	case tag == TagU32:
		return 4, nil
	case tag == TagU64:
		return 8, nil
	case tag == TagU128:
		return 16, nil
	default:
		return 0, errors.Wrapf(ErrInvalidTag, "reserved varint tag 0x%02x", tag)
	}
}

// DecodeUvarint128 decodes one varint from the front of b, returning the
// value and the number of bytes consumed. Non-minimal encodings are accepted.
func DecodeUvarint128(b []byte, order binary.ByteOrder) (Uint128, int, error) {
	if len(b) == 0 {
		return Uint128{}, 0, ErrUnexpectedEOF
	}
	width, err := TagWidth(b[0])
	if err != nil {
		return Uint128{}, 0, err
	}
	if len(b) < 1+width {
		return Uint128{}, 0, errors.Wrapf(ErrUnexpectedEOF, "varint payload needs %d bytes", width)
	}
	return uvarintPayload(b[0], b[1:1+width], order), 1 + width, nil
}

func uvarintPayload(tag byte, payload []byte, order binary.ByteOrder) Uint128 {
	switch tag {
	case TagU16:
		return Uint128From64(uint64(order.Uint16(payload)))
	case TagU32:
		return Uint128From64(uint64(order.Uint32(payload)))
	case TagU64:
		return Uint128From64(order.Uint64(payload))
	case TagU128:
		return getUint128(payload, order)
	default:
		return Uint128From64(uint64(tag))
	}
}

// ZigZag maps signed integers onto unsigned ones so that values of small
// magnitude stay small: 0, -1, 1, -2 become 0, 1, 2, 3.
func ZigZag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func ZigZag128(n Int128) Uint128 {
	sign := uint64(int64(n.Hi) >> 63)
	return Uint128{
		Hi: (n.Hi<<1 | n.Lo>>63) ^ sign,
		Lo: (n.Lo << 1) ^ sign,
	}
}

func UnZigZag128(u Uint128) Int128 {
	mask := -(u.Lo & 1)
	return Int128{
		Hi: (u.Hi >> 1) ^ mask,
		Lo: (u.Lo>>1 | u.Hi<<63) ^ mask,
	}
}
