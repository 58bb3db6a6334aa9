/*
Package codec implements a compact, deterministic binary encoding for
structured values. The format is not self-describing: a value can only be
decoded by asking for the same shape it was encoded with.

Wire format:

	- bool: a single byte, 0x00 or 0x01. Any other byte fails to decode.
	- u8/i8: a single byte.
	- u16..u128, i16..i128: the declared width in the configured byte order
	  (little endian by default). With VarInt encoding, a tagged varint
	  instead: values up to 250 are one byte, larger values are a tag
	  (0xfb u16, 0xfc u32, 0xfd u64, 0xfe u128) followed by the payload.
	  Signed values are zig-zag mapped first. 0xff is reserved.
	- f32/f64: IEEE-754 bits, 4 or 8 bytes, never varint encoded.
	- char: the code point as a u32.
	- string/bytes: a u64 length prefix followed by the raw bytes. Strings
	  must be valid UTF-8.
	- sequence/map: a u64 length prefix followed by the elements, or by
	  key/value pairs.
	- tuple/array/record: the fields in declared order with no prefix.
	- option: a 0x00/0x01 byte followed by the payload when present.
	- union: the variant index as a u32 followed by the variant payload.

Types plug into the codec through the Encoder and Decoder interfaces,
which drive a Writer or a Reader:

	type Point struct {
		X, Y int32
	}

	func (p *Point) Encode(w codec.Writer) error {
		return codec.EncodeFields(w, p.X, p.Y)
	}

	func (p *Point) Decode(r codec.Reader) error {
		return codec.DecodeFields(r, &p.X, &p.Y)
	}

Values without hooks are handled by reflection: exported struct fields in
declaration order (skip one with `wire:"-"`), arrays, slices, maps (ordered
by encoded key), pointers (as optional values) and time.Time.

	cfg := codec.NewConfig().WithVarInts().WithLimit(1 << 20)
	b, err := codec.Encode(&Point{X: 1, Y: -1}, cfg)

	var p Point
	err = codec.Decode(b, &p, cfg)

A Config is an immutable value shared freely between goroutines. All other
state lives in a single call. A size limit is checked before every write
and before any allocation driven by a decoded length prefix.
*/
package codec
