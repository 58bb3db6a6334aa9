package codec

import (
	"io"

	"wirecodec/log"
)

var logger = log.WithModule("codec")

// Encode encodes v into a newly allocated buffer.
func Encode(v interface{}, cfg Config) ([]byte, error) {
	s := &bufferSink{
		buf: make([]byte, 0, 64),
	}
	if err := EncodeField(newEncoder(cfg, s), v); err != nil {
		return nil, err
	}
	return s.buf, nil
}

// EncodeTo encodes v directly into w. Failures reported by w are returned
// as *IOError; whatever was written before an error should be discarded.
func EncodeTo(w io.Writer, v interface{}, cfg Config) error {
	return EncodeField(NewWriter(w, cfg), v)
}

// EncodedSize returns the exact number of bytes Encode would produce for v
// under cfg, without producing them. A configured size limit is enforced
// the same way Encode enforces it.
func EncodedSize(v interface{}, cfg Config) (uint64, error) {
	e := newEncoder(cfg, countSink{})
	if err := EncodeField(e, v); err != nil {
		return 0, err
	}
	return e.limit.Count(), nil
}

// Decode decodes data into v, which must be a pointer or a Decoder. Values
// read through the borrowed Reader methods alias data. Unless cfg allows
// trailing bytes, data must be consumed exactly.
func Decode(data []byte, v interface{}, cfg Config) error {
	r := NewSliceReader(data, cfg)
	if err := DecodeField(r, v); err != nil {
		return err
	}
	return r.Finish()
}

// DecodeFrom decodes a single value from r, reading no further than the
// value's last byte. Borrowed reads are unavailable.
func DecodeFrom(r io.Reader, v interface{}, cfg Config) error {
	return DecodeField(NewStreamReader(r, cfg), v)
}
