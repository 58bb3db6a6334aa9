package codec

import (
	"io"

	"github.com/pkg/errors"
)

// streamChunk is the largest single allocation a stream source makes while
// reading a byte payload. Longer payloads grow as their bytes arrive.
const streamChunk = 64 * 1024

type source interface {
	// next returns the next n bytes. The result is only valid until the
	// following call.
	next(n int) ([]byte, error)
	// borrow returns the next n bytes as a view into the input itself.
	borrow(n int) ([]byte, error)
	// take returns the next n bytes in newly allocated storage.
	take(n int) ([]byte, error)
}

type sliceSource struct {
	buf []byte
}

func (s *sliceSource) next(n int) ([]byte, error) {
	if n > len(s.buf) {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes, have %d", n, len(s.buf))
	}
	b := s.buf[:n:n]
	s.buf = s.buf[n:]
	return b, nil
}

func (s *sliceSource) borrow(n int) ([]byte, error) {
	return s.next(n)
}

func (s *sliceSource) take(n int) ([]byte, error) {
	b, err := s.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// streamSource reads exactly what each call asks for and never reads
// ahead, so the underlying reader is left positioned right after the value.
type streamSource struct {
	r       io.Reader
	scratch []byte
}

func (s *streamSource) next(n int) ([]byte, error) {
	if cap(s.scratch) < n {
		s.scratch = make([]byte, n)
	}
	b := s.scratch[:n]
	if err := s.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *streamSource) borrow(n int) ([]byte, error) {
	return nil, ErrBorrowUnavailable
}

func (s *streamSource) take(n int) ([]byte, error) {
	if n <= streamChunk {
		out := make([]byte, n)
		if err := s.readFull(out); err != nil {
			return nil, err
		}
		return out, nil
	}

	out := make([]byte, 0, streamChunk)
	for len(out) < n {
		m := n - len(out)
		if m > streamChunk {
			m = streamChunk
		}
		start := len(out)
		out = append(out, make([]byte, m)...)
		if err := s.readFull(out[start:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *streamSource) readFull(b []byte) error {
	_, err := io.ReadFull(s.r, b)
	switch {
	case err == nil:
		return nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrUnexpectedEOF, "reading %d bytes", len(b))
	default:
		return wrapIO(err)
	}
}
