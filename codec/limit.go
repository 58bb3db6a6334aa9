package codec

import (
	"github.com/pkg/errors"
)

// maxPrealloc caps how many elements a decoded length prefix may reserve
// up front. Larger collections grow as their elements actually arrive.
const maxPrealloc = 4096

// limiter counts the bytes a single call has produced or consumed and
// enforces the configured ceiling. It belongs to exactly one call.
type limiter struct {
	limit   uint64
	bounded bool
	count   uint64
}

func newLimiter(cfg Config) *limiter {
	limit, bounded := cfg.Limit()
	return &limiter{
		limit:   limit,
		bounded: bounded,
	}
}

func (l *limiter) Count() uint64 {
	return l.count
}

// Remaining reports how many bytes may still be claimed. Unbounded
// limiters report false.
func (l *limiter) Remaining() (uint64, bool) {
	if !l.bounded {
		return 0, false
	}
	return l.limit - l.count, true
}

// Claim reserves n bytes, failing without side effects if that would take
// the call past its limit.
func (l *limiter) Claim(n uint64) error {
	if err := l.Check(n); err != nil {
		return err
	}
	l.count += n
	return nil
}

// Check verifies that n more bytes fit without reserving them.
func (l *limiter) Check(n uint64) error {
	if !l.bounded {
		return nil
	}
	if n > l.limit-l.count {
		logger.Debug(
			"rejecting size limit violation",
			"limit", l.limit,
			"used", l.count,
			"requested", n,
		)
		return errors.Wrapf(ErrSizeLimit, "%d bytes requested with %d of %d used", n, l.count, l.limit)
	}
	return nil
}

// CheckCount verifies that n items of width bytes each fit without
// reserving them.
func (l *limiter) CheckCount(n, width uint64) error {
	if !l.bounded {
		return nil
	}
	remaining := l.limit - l.count
	if n > remaining/width {
		logger.Debug(
			"rejecting collection larger than size limit",
			"limit", l.limit,
			"used", l.count,
			"count", n,
			"width", width,
		)
		return errors.Wrapf(ErrSizeLimit, "%d items of %d bytes with %d of %d used", n, width, l.count, l.limit)
	}
	return nil
}

// PreallocCap bounds the capacity a caller should reserve for a decoded
// collection of n elements.
func PreallocCap(n int) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}
