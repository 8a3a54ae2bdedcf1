package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

func newTestStore(t *testing.T) *SQLiteRunStore {
	t.Helper()
	s, err := NewSQLiteRunStore(SQLiteConfig{Path: filepath.Join(t.TempDir(), "data", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := &Run{
		Command:    "parse",
		Input:      "token_stream.txt",
		TokenCount: 51,
		Success:    false,
		Diagnostic: "expected KEYWORD at position 51, got EOF",
		Duration:   42 * time.Millisecond,
	}
	require.NoError(t, s.Record(ctx, run))
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.StartedAt.IsZero())

	got, err := s.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "parse", got.Command)
	assert.Equal(t, "token_stream.txt", got.Input)
	assert.Equal(t, 51, got.TokenCount)
	assert.False(t, got.Success)
	assert.Equal(t, run.Diagnostic, got.Diagnostic)
	assert.Equal(t, 42*time.Millisecond, got.Duration)
	assert.WithinDuration(t, run.StartedAt, got.StartedAt, time.Second)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestList_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i, cmd := range []string{"scan", "analyze", "run"} {
		require.NoError(t, s.Record(ctx, &Run{
			Command:   cmd,
			Success:   true,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "run", all[0].Command)
	assert.Equal(t, "scan", all[2].Command)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "analyze", limited[1].Command)
}

func TestPrune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Run{Command: "old", StartedAt: time.Now().Add(-48 * time.Hour)}))
	require.NoError(t, s.Record(ctx, &Run{Command: "new"}))

	deleted, err := s.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "new", runs[0].Command)
}

func TestRecord_DuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Run{ID: "fixed", Command: "scan"}))
	err := s.Record(ctx, &Run{ID: "fixed", Command: "scan"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDatabaseError))
}

var _ RunStore = (*SQLiteRunStore)(nil)
