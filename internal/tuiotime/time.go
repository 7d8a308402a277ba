package tuiotime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MicrosPerSecond is the number of microseconds in one second.
const MicrosPerSecond = 1_000_000

// ErrSyntax is returned by Parse for malformed time literals.
var ErrSyntax = errors.New("invalid time literal")

// Time is elapsed time split into whole seconds and a microsecond fraction.
//
// Construction stores both fields verbatim. Only the arithmetic methods
// normalize, and only their results.
type Time struct {
	sec  int64
	usec int64
}

// New returns a Time with the given fields, unvalidated.
func New(seconds, microseconds int64) Time {
	return Time{sec: seconds, usec: microseconds}
}

// FromSnapshot wraps a clock reading. The snapshot is assumed normalized.
func FromSnapshot(s Snapshot) Time {
	return New(s.SecondsSinceEpoch(), s.FractionalMicroseconds())
}

// FromDuration converts d to a normalized Time, truncating to microseconds.
func FromDuration(d time.Duration) Time {
	return Time{}.SubMicros(-d.Microseconds())
}

// Seconds returns the whole-second component.
func (t Time) Seconds() int64 { return t.sec }

// Microseconds returns the sub-second component.
func (t Time) Microseconds() int64 { return t.usec }

// AddMicros adds a raw microsecond delta.
//
// The delta is split with truncating division and the fraction is added
// without re-normalization, so negative deltas may yield a negative
// microsecond field.
func (t Time) AddMicros(delta int64) Time {
	return Time{
		sec:  t.sec + delta/MicrosPerSecond,
		usec: t.usec + delta%MicrosPerSecond,
	}
}

// Add returns t+u with the microsecond carry folded into seconds.
func (t Time) Add(u Time) Time {
	sec := t.sec + u.sec
	usec := t.usec + u.usec
	sec += usec / MicrosPerSecond
	usec %= MicrosPerSecond
	return Time{sec: sec, usec: usec}
}

// SubMicros subtracts a raw microsecond delta, borrowing one second when the
// fraction goes negative.
func (t Time) SubMicros(delta int64) Time {
	return borrow(t.sec-delta/MicrosPerSecond, t.usec-delta%MicrosPerSecond)
}

// Sub returns t-u, borrowing one second when the fraction goes negative.
func (t Time) Sub(u Time) Time {
	return borrow(t.sec-u.sec, t.usec-u.usec)
}

func borrow(sec, usec int64) Time {
	if usec < 0 {
		usec += MicrosPerSecond
		sec--
	}
	return Time{sec: sec, usec: usec}
}

// Equal reports whether both fields match exactly.
func (t Time) Equal(u Time) bool {
	return t.sec == u.sec && t.usec == u.usec
}

// TotalMilliseconds returns 1000*seconds + microseconds/1000, truncated.
func (t Time) TotalMilliseconds() int64 {
	return 1000*t.sec + t.usec/1000
}

// Duration converts t to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.sec)*time.Second + time.Duration(t.usec)*time.Microsecond
}

// IsNormalized reports whether the microsecond field is in [0, 1_000_000).
func (t Time) IsNormalized() bool {
	return t.usec >= 0 && t.usec < MicrosPerSecond
}

// String formats normalized values as a signed decimal with six fractional
// digits ("-1.250000"). Other values print both fields ("5s-1us").
func (t Time) String() string {
	if !t.IsNormalized() {
		return fmt.Sprintf("%ds%+dus", t.sec, t.usec)
	}
	if t.sec >= 0 {
		return fmt.Sprintf("%d.%06d", t.sec, t.usec)
	}
	whole, frac := -t.sec, t.usec
	if frac > 0 {
		whole--
		frac = MicrosPerSecond - frac
	}
	return fmt.Sprintf("-%d.%06d", whole, frac)
}

// Parse reads a decimal seconds literal such as "12", "3.5" or "-0.000250".
// At most six fractional digits are accepted. The result is normalized.
func Parse(s string) (Time, error) {
	body := s
	neg := false
	switch {
	case strings.HasPrefix(body, "-"):
		neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	whole, frac, hasFrac := strings.Cut(body, ".")
	if whole == "" || !isDigits(whole) {
		return Time{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	if hasFrac && (frac == "" || len(frac) > 6 || !isDigits(frac)) {
		return Time{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}

	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Time{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	var usec int64
	if hasFrac {
		usec, _ = strconv.ParseInt(frac+strings.Repeat("0", 6-len(frac)), 10, 64)
	}

	t := New(sec, usec)
	if neg {
		return Time{}.Sub(t), nil
	}
	return t, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
