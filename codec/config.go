package codec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "", LittleEndian.String():
		return LittleEndian, nil
	case BigEndian.String():
		return BigEndian, nil
	default:
		return LittleEndian, errors.Errorf("invalid endianness: %s", s)
	}
}

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		panic("invalid endianness")
	}
}

type IntEncoding uint8

const (
	// FixedInt writes every integer at its declared width.
	FixedInt IntEncoding = iota
	// VarInt writes 16-bit and wider integers with the tagged varint scheme.
	VarInt
)

func ParseIntEncoding(s string) (IntEncoding, error) {
	switch strings.ToLower(s) {
	case "", FixedInt.String():
		return FixedInt, nil
	case VarInt.String():
		return VarInt, nil
	default:
		return FixedInt, errors.Errorf("invalid integer encoding: %s", s)
	}
}

func (i IntEncoding) String() string {
	switch i {
	case FixedInt:
		return "fixed"
	case VarInt:
		return "variable"
	default:
		panic("invalid integer encoding")
	}
}

type TrailingBytes uint8

const (
	RejectTrailing TrailingBytes = iota
	AllowTrailing
)

func ParseTrailingBytes(s string) (TrailingBytes, error) {
	switch strings.ToLower(s) {
	case "", RejectTrailing.String():
		return RejectTrailing, nil
	case AllowTrailing.String():
		return AllowTrailing, nil
	default:
		return RejectTrailing, errors.Errorf("invalid trailing bytes policy: %s", s)
	}
}

func (t TrailingBytes) String() string {
	switch t {
	case RejectTrailing:
		return "reject"
	case AllowTrailing:
		return "allow"
	default:
		panic("invalid trailing bytes policy")
	}
}

// Config describes the encoding rules for a call. The zero value encodes
// little endian fixed-width integers with no size limit and rejects
// trailing bytes. Configs are values: the With* methods return modified
// copies and never change the receiver, so a Config can be shared freely.
type Config struct {
	endian     Endianness
	ints       IntEncoding
	limit      uint64
	hasLimit   bool
	trailing   TrailingBytes
	depthLimit int
}

func NewConfig() Config {
	return Config{}
}

func (c Config) WithLittleEndian() Config {
	c.endian = LittleEndian
	return c
}

func (c Config) WithBigEndian() Config {
	c.endian = BigEndian
	return c
}

func (c Config) WithEndianness(e Endianness) Config {
	c.endian = e
	return c
}

func (c Config) WithFixedInts() Config {
	c.ints = FixedInt
	return c
}

func (c Config) WithVarInts() Config {
	c.ints = VarInt
	return c
}

func (c Config) WithIntEncoding(i IntEncoding) Config {
	c.ints = i
	return c
}

// WithLimit caps the number of bytes a single encode or decode call may
// produce or consume.
func (c Config) WithLimit(n uint64) Config {
	c.limit = n
	c.hasLimit = true
	return c
}

func (c Config) WithNoLimit() Config {
	c.limit = 0
	c.hasLimit = false
	return c
}

func (c Config) AllowTrailingBytes() Config {
	c.trailing = AllowTrailing
	return c
}

func (c Config) RejectTrailingBytes() Config {
	c.trailing = RejectTrailing
	return c
}

// WithDepthLimit bounds how deeply Reader.Enter calls may nest. Zero or a
// negative value disables the check.
func (c Config) WithDepthLimit(n int) Config {
	if n < 0 {
		n = 0
	}
	c.depthLimit = n
	return c
}

func (c Config) Endianness() Endianness {
	return c.endian
}

func (c Config) IntEncoding() IntEncoding {
	return c.ints
}

func (c Config) Limit() (uint64, bool) {
	return c.limit, c.hasLimit
}

func (c Config) TrailingBytes() TrailingBytes {
	return c.trailing
}

func (c Config) DepthLimit() int {
	return c.depthLimit
}

func (c Config) String() string {
	limit := "none"
	if c.hasLimit {
		limit = fmt.Sprintf("%d", c.limit)
	}
	depth := "none"
	if c.depthLimit > 0 {
		depth = fmt.Sprintf("%d", c.depthLimit)
	}
	return fmt.Sprintf(
		"endian=%s ints=%s limit=%s trailing=%s depth=%s",
		c.endian,
		c.ints,
		limit,
		c.trailing,
		depth,
	)
}

// ByteOrder returns the binary.ByteOrder matching the configured endianness.
func (c Config) ByteOrder() binary.ByteOrder {
	if c.endian == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
