package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

// SessionRecord is a persisted session origin.
type SessionRecord struct {
	ID     string
	Name   string
	Origin tuiotime.Time
	Seq    int64
}

// CreateSession records a new named session with the given origin.
// The name is NFC normalized before it is stored.
//
// Returns ErrSessionExists if the name is already taken.
func (s *Store) CreateSession(ctx context.Context, name string, origin tuiotime.Time) (SessionRecord, error) {
	rec := SessionRecord{
		ID:     s.ids.Generate(),
		Name:   norm.NFC.String(name),
		Origin: origin,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("create session: %w", err)
	}
	defer tx.Rollback()

	rec.Seq, err = nextSeq(ctx, tx, "sessions")
	if err != nil {
		return SessionRecord{}, fmt.Errorf("create session: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, name, origin_seconds, origin_micros, seq)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, origin.Seconds(), origin.Microseconds(), rec.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return SessionRecord{}, fmt.Errorf("create session %q: %w", rec.Name, ErrSessionExists)
		}
		return SessionRecord{}, fmt.Errorf("create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SessionRecord{}, fmt.Errorf("create session: %w", err)
	}
	return rec, nil
}

// GetSession returns the session with the given name.
//
// Returns ErrSessionNotFound if no such session exists.
func (s *Store) GetSession(ctx context.Context, name string) (SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, origin_seconds, origin_micros, seq
		FROM sessions
		WHERE name = ?
	`, norm.NFC.String(name))

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("get session %q: %w", name, ErrSessionNotFound)
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session: %w", err)
	}
	return rec, nil
}

// ListSessions returns all sessions ordered by seq ASC, id ASC.
//
// Returns an empty slice (not nil) if there are no sessions.
func (s *Store) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, origin_seconds, origin_micros, seq
		FROM sessions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []SessionRecord{}
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session and, through the foreign key cascade, its marks.
//
// Returns ErrSessionNotFound if no such session exists.
func (s *Store) DeleteSession(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, norm.NFC.String(name))
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete session %q: %w", name, ErrSessionNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (SessionRecord, error) {
	var (
		rec       SessionRecord
		sec, usec int64
	)
	if err := row.Scan(&rec.ID, &rec.Name, &sec, &usec, &rec.Seq); err != nil {
		return SessionRecord{}, err
	}
	rec.Origin = tuiotime.New(sec, usec)
	return rec, nil
}
