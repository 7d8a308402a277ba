package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/tuiotime/internal/store"
	"github.com/roach88/tuiotime/internal/tuiotime"
)

// TimeResult is the output form of a tuiotime.Time.
type TimeResult struct {
	Value        string `json:"value"`
	Seconds      int64  `json:"seconds"`
	Microseconds int64  `json:"microseconds"`
	Milliseconds int64  `json:"milliseconds"`
}

func newTimeResult(t tuiotime.Time) TimeResult {
	return TimeResult{
		Value:        t.String(),
		Seconds:      t.Seconds(),
		Microseconds: t.Microseconds(),
		Milliseconds: t.TotalMilliseconds(),
	}
}

func (r TimeResult) String() string {
	return fmt.Sprintf("%s (%d ms)", r.Value, r.Milliseconds)
}

// MillisResult is the output of calc ms.
type MillisResult struct {
	Value        string `json:"value"`
	Milliseconds int64  `json:"milliseconds"`
}

func (r MillisResult) String() string {
	return fmt.Sprintf("%d", r.Milliseconds)
}

// SessionResult describes a persisted session.
type SessionResult struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Origin TimeResult `json:"origin"`
	Seq    int64      `json:"seq"`
}

func newSessionResult(rec store.SessionRecord) SessionResult {
	return SessionResult{
		ID:     rec.ID,
		Name:   rec.Name,
		Origin: newTimeResult(rec.Origin),
		Seq:    rec.Seq,
	}
}

func (r SessionResult) String() string {
	return fmt.Sprintf("session %s started at %s", r.Name, r.Origin.Value)
}

// SessionList is the output of session list.
type SessionList []SessionResult

func (l SessionList) String() string {
	if len(l) == 0 {
		return "no sessions"
	}
	lines := make([]string, len(l))
	for i, s := range l {
		lines[i] = fmt.Sprintf("%s\t%s", s.Name, s.Origin.Value)
	}
	return strings.Join(lines, "\n")
}

// ElapsedResult is the output of session elapsed.
type ElapsedResult struct {
	Session string     `json:"session"`
	Elapsed TimeResult `json:"elapsed"`
}

func (r ElapsedResult) String() string {
	return fmt.Sprintf("%s %s", r.Session, r.Elapsed)
}

// MarkResult describes a recorded mark.
type MarkResult struct {
	ID      string     `json:"id"`
	Session string     `json:"session"`
	Label   string     `json:"label"`
	Elapsed TimeResult `json:"elapsed"`
	Seq     int64      `json:"seq"`
}

func newMarkResult(session string, rec store.MarkRecord) MarkResult {
	return MarkResult{
		ID:      rec.ID,
		Session: session,
		Label:   rec.Label,
		Elapsed: newTimeResult(rec.At),
		Seq:     rec.Seq,
	}
}

func (r MarkResult) String() string {
	return fmt.Sprintf("#%d %s %s", r.Seq, r.Label, r.Elapsed)
}

// MarkList is the output of session marks.
type MarkList struct {
	Session string       `json:"session"`
	Marks   []MarkResult `json:"marks"`
}

func (l MarkList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "session %s: %d mark(s)", l.Session, len(l.Marks))
	for _, m := range l.Marks {
		b.WriteString("\n")
		b.WriteString(m.String())
	}
	return b.String()
}

// DeletedResult is the output of session delete.
type DeletedResult struct {
	Session string `json:"session"`
	Deleted bool   `json:"deleted"`
}

func (r DeletedResult) String() string {
	return fmt.Sprintf("session %s deleted", r.Session)
}
