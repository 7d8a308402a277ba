package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

func TestCreateSession(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, err := s.CreateSession(ctx, "demo", tuiotime.New(3_913_000_000, 250_000))
	require.NoError(t, err)
	assert.Equal(t, "rec-0001", rec.ID)
	assert.Equal(t, "demo", rec.Name)
	assert.Equal(t, int64(1), rec.Seq)
	assert.Equal(t, tuiotime.New(3_913_000_000, 250_000), rec.Origin)

	got, err := s.GetSession(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCreateSession_Duplicate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.CreateSession(ctx, "demo", tuiotime.New(1, 0))
	require.NoError(t, err)

	_, err = s.CreateSession(ctx, "demo", tuiotime.New(2, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExists)

	// The first origin is untouched.
	got, err := s.GetSession(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, tuiotime.New(1, 0), got.Origin)
}

func TestCreateSession_NormalizesName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	_, err := s.CreateSession(ctx, decomposed, tuiotime.New(1, 0))
	require.NoError(t, err)

	got, err := s.GetSession(ctx, composed)
	require.NoError(t, err)
	assert.Equal(t, composed, got.Name)

	_, err = s.CreateSession(ctx, composed, tuiotime.New(2, 0))
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestGetSession_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetSession(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestListSessions_Ordered(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	empty, err := s.ListSessions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.CreateSession(ctx, name, tuiotime.New(10, 0))
		require.NoError(t, err)
	}

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "zeta", sessions[0].Name)
	assert.Equal(t, "alpha", sessions[1].Name)
	assert.Equal(t, "mid", sessions[2].Name)
	for i, rec := range sessions {
		assert.Equal(t, int64(i+1), rec.Seq)
	}
}

func TestDeleteSession(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, err := s.CreateSession(ctx, "gone", tuiotime.New(1, 0))
	require.NoError(t, err)
	_, err = s.AddMark(ctx, rec.ID, "first", tuiotime.New(0, 5))
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(ctx, "gone"))

	_, err = s.GetSession(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	marks, err := s.ListMarks(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, marks, "marks should cascade")

	assert.ErrorIs(t, s.DeleteSession(ctx, "gone"), ErrSessionNotFound)
}

func TestSession_PersistsAcrossReopen(t *testing.T) {
	path := t.TempDir() + "/reopen.db"
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	created, err := s1.CreateSession(ctx, "long-lived", tuiotime.New(-4, 999_999))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetSession(ctx, "long-lived")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
