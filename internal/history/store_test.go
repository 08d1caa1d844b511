// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjoshi/libshelf/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{Query: "example book", Title: "Example Book", Author: "Jane Doe", Pages: 353,
			Size: "4 Mb", FileType: "pdf", DestPath: "books/example.pdf",
			Status: StatusOK, CreatedAt: base},
		{Query: "missing book", Status: StatusFailed, Error: "no results",
			CreatedAt: base.Add(time.Minute)},
	}
	for _, a := range attempts {
		require.NoError(t, s.Record(ctx, a))
	}

	got, err := s.List(ctx, 10, false)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "missing book", got[0].Query)
	assert.Equal(t, StatusFailed, got[0].Status)
	assert.Equal(t, "no results", got[0].Error)

	assert.Equal(t, "Example Book", got[1].Title)
	assert.Equal(t, 353, got[1].Pages)
	assert.True(t, got[1].CreatedAt.Equal(base), "CreatedAt = %v, want %v", got[1].CreatedAt, base)
}

func TestListFailedOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Attempt{Query: "a", Status: StatusOK}))
	require.NoError(t, s.Record(ctx, Attempt{Query: "b", Status: StatusFailed, Error: "boom"}))

	got, err := s.List(ctx, 10, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Query)
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Attempt{Query: "q", Status: StatusOK}))
	}

	got, err := s.List(ctx, 3, false)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/history"
	s, err := Open(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.List(context.Background(), 10, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}
