// Package osc implements the OSC 1.0 time tag.
//
// A time tag is a 64-bit NTP timestamp: the upper 32 bits count seconds since
// 1900-01-01 00:00:00 UTC, the lower 32 bits are a binary fraction of a
// second. On the wire it is 8 bytes, big endian.
package osc

import (
	"encoding/binary"
	"errors"
	"time"
)

// TimeTagSize is the encoded size of a time tag in bytes.
const TimeTagSize = 8

// ntpEpochOffset is the number of seconds between 1900-01-01 and 1970-01-01.
const ntpEpochOffset = 2208988800

// ErrShortBuffer is returned when fewer than TimeTagSize bytes are available.
var ErrShortBuffer = errors.New("osc: short buffer for time tag")

// TimeTag is an NTP-format OSC time tag.
type TimeTag uint64

// Immediate is the special time tag meaning "now".
const Immediate TimeTag = 1

// NewTimeTag builds a time tag from NTP seconds and a 32-bit fraction.
func NewTimeTag(seconds, fraction uint32) TimeTag {
	return TimeTag(uint64(seconds)<<32 | uint64(fraction))
}

// FromTime converts t to a time tag. The fraction is rounded up so that
// truncating it back to nanoseconds or microseconds is lossless.
func FromTime(t time.Time) TimeTag {
	secs := uint64(t.Unix() + ntpEpochOffset)
	frac := (uint64(t.Nanosecond())<<32 + 999_999_999) / 1_000_000_000
	return TimeTag(secs<<32 | frac)
}

// Seconds returns the NTP seconds field.
func (t TimeTag) Seconds() uint32 {
	return uint32(t >> 32)
}

// Fraction returns the binary fraction field.
func (t TimeTag) Fraction() uint32 {
	return uint32(t)
}

// Time converts the tag back to a time.Time in UTC.
func (t TimeTag) Time() time.Time {
	secs := int64(t.Seconds()) - ntpEpochOffset
	nsec := (uint64(t.Fraction()) * 1_000_000_000) >> 32
	return time.Unix(secs, int64(nsec)).UTC()
}

// SecondsSinceEpoch returns the NTP seconds field as a signed integer.
func (t TimeTag) SecondsSinceEpoch() int64 {
	return int64(t.Seconds())
}

// FractionalMicroseconds returns the fraction truncated to microseconds.
// The result is always in [0, 1_000_000).
func (t TimeTag) FractionalMicroseconds() int64 {
	return int64((uint64(t.Fraction()) * 1_000_000) >> 32)
}

// Append appends the 8-byte big endian encoding of t to b.
func (t TimeTag) Append(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(t))
}

// ParseTimeTag decodes a time tag from the first 8 bytes of b.
func ParseTimeTag(b []byte) (TimeTag, error) {
	if len(b) < TimeTagSize {
		return 0, ErrShortBuffer
	}
	return TimeTag(binary.BigEndian.Uint64(b)), nil
}
