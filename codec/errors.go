package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnexpectedEOF is returned when the input ends before a read completes.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 string")
	// ErrInvalidChar is returned when a code point is not a Unicode scalar value.
	ErrInvalidChar = errors.New("invalid character value")
	// ErrInvalidBool is returned when a boolean byte is neither 0x00 nor 0x01.
	ErrInvalidBool = errors.New("invalid boolean value")
	// ErrInvalidTag is returned for out-of-range option, variant or varint tags.
	ErrInvalidTag = errors.New("invalid tag encoding")
	// ErrSizeLimit is returned when a call would exceed the configured byte limit.
	ErrSizeLimit = errors.New("size limit exceeded")
	// ErrDepthLimit is returned when nested reads exceed the configured depth.
	ErrDepthLimit = errors.New("depth limit exceeded")
	// ErrTrailingBytes is returned when input remains after a value was decoded
	// and the configuration rejects trailing bytes.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")
	// ErrBorrowUnavailable is returned when a borrowed view is requested from a
	// source that has no stable backing buffer.
	ErrBorrowUnavailable = errors.New("borrowed read requires a slice source")
)

// IOError wraps a failure reported by the underlying sink or source.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io failure: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ApplicationError lets Encode and Decode hooks reject data for their own
// reasons. The codec never wraps or rewrites it.
type ApplicationError struct {
	Msg string
}

func (e *ApplicationError) Error() string {
	return e.Msg
}

// Errorf returns an *ApplicationError with a formatted message.
func Errorf(format string, args ...interface{}) error {
	return &ApplicationError{
		Msg: fmt.Sprintf(format, args...),
	}
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Err: err}
}
