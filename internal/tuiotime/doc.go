// Package tuiotime implements session-relative timestamps.
//
// A Time is an immutable (seconds, microseconds) pair. Arithmetic between two
// Time values always normalizes the result so that the microsecond field lands
// in [0, 1_000_000), carrying or borrowing whole seconds as needed.
//
// # Arithmetic
//
// There is one method per operator:
//
//	t.Add(u)          // value + value, carry folded into seconds
//	t.Sub(u)          // value - value, single borrow
//	t.AddMicros(n)    // value + raw microseconds
//	t.SubMicros(n)    // value - raw microseconds, single borrow
//
// AddMicros splits n with Go's truncating / and %, and does NOT re-normalize
// the result. A negative delta can therefore leave a negative microsecond
// field, for example New(5, 0).AddMicros(-1) is (5, -1). SubMicros and the
// value operators do fold the borrow. Code that needs a normalized result for
// negative deltas should call SubMicros(-n) instead.
//
// # Sessions
//
// Relative time is measured against the origin held by a Session. A Session
// wraps a Source (the wall clock) and is initialised once at startup:
//
//	s := tuiotime.NewSession(tuiotime.SystemSource{})
//	s.Init()
//	elapsed := s.Relative()
//
// Calling Relative before Init measures against the zero Time. That is an
// unchecked precondition; RelativeChecked reports it as an error instead.
//
// A process-wide default Session is available through Default, InitDefault
// and CurrentTime for code that has no handle to thread through.
package tuiotime
