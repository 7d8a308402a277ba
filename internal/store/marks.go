package store

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

// MarkRecord is a labelled relative timestamp within a session.
type MarkRecord struct {
	ID        string
	SessionID string
	Label     string
	At        tuiotime.Time
	Seq       int64
}

// AddMark records a mark at relative time at for the given session.
// The label is NFC normalized before it is stored.
//
// The session must exist (foreign key constraint).
func (s *Store) AddMark(ctx context.Context, sessionID, label string, at tuiotime.Time) (MarkRecord, error) {
	rec := MarkRecord{
		ID:        s.ids.Generate(),
		SessionID: sessionID,
		Label:     norm.NFC.String(label),
		At:        at,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MarkRecord{}, fmt.Errorf("add mark: %w", err)
	}
	defer tx.Rollback()

	rec.Seq, err = nextSeq(ctx, tx, "marks")
	if err != nil {
		return MarkRecord{}, fmt.Errorf("add mark: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO marks (id, session_id, label, seconds, micros, seq)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SessionID, rec.Label, at.Seconds(), at.Microseconds(), rec.Seq)
	if err != nil {
		return MarkRecord{}, fmt.Errorf("add mark: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return MarkRecord{}, fmt.Errorf("add mark: %w", err)
	}
	return rec, nil
}

// ListMarks returns the marks of a session ordered by seq ASC, id ASC.
//
// Returns an empty slice (not nil) if the session has no marks.
func (s *Store) ListMarks(ctx context.Context, sessionID string) ([]MarkRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, label, seconds, micros, seq
		FROM marks
		WHERE session_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query marks: %w", err)
	}
	defer rows.Close()

	marks := []MarkRecord{}
	for rows.Next() {
		var (
			rec       MarkRecord
			sec, usec int64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Label, &sec, &usec, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan mark: %w", err)
		}
		rec.At = tuiotime.New(sec, usec)
		marks = append(marks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate marks: %w", err)
	}
	return marks, nil
}
