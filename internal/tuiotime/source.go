package tuiotime

import (
	"time"

	"github.com/roach88/tuiotime/internal/osc"
)

// Snapshot is a point-in-time clock reading.
//
// FractionalMicroseconds is expected in [0, 1_000_000).
type Snapshot interface {
	SecondsSinceEpoch() int64
	FractionalMicroseconds() int64
}

// Source yields clock readings. Now must not block.
type Source interface {
	Now() Snapshot
}

// Reading is a plain Snapshot value.
type Reading struct {
	Sec  int64
	Usec int64
}

// SecondsSinceEpoch implements Snapshot.
func (r Reading) SecondsSinceEpoch() int64 { return r.Sec }

// FractionalMicroseconds implements Snapshot.
func (r Reading) FractionalMicroseconds() int64 { return r.Usec }

// SystemSource reads the host wall clock as an OSC time tag.
type SystemSource struct{}

// Now implements Source.
func (SystemSource) Now() Snapshot {
	return osc.FromTime(time.Now())
}

// FixedSource always returns the same reading.
type FixedSource struct {
	Reading Reading
}

// Now implements Source.
func (f FixedSource) Now() Snapshot {
	return f.Reading
}

// SnapshotNow queries src and wraps the reading as a Time.
func SnapshotNow(src Source) Time {
	return FromSnapshot(src.Now())
}

var (
	_ Source   = SystemSource{}
	_ Source   = FixedSource{}
	_ Snapshot = Reading{}
	_ Snapshot = osc.TimeTag(0)
)
