package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyumane/hyumane/internal/session"
)

func newTestStore(t *testing.T) session.Store {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE session (
			name TEXT PRIMARY KEY,
			actor_id TEXT NOT NULL,
			verified INTEGER NOT NULL DEFAULT 0,
			verified_at INTEGER NOT NULL DEFAULT 0
		)
	`)
	require.NoError(t, err)

	return New(db)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := newTestStore(t)

	r, err := s.Get(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_SetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	verifiedAt := time.Unix(1700000000, 0)

	require.NoError(t, s.Set(ctx, &session.Record{
		ActorID:    "actor",
		Verified:   true,
		VerifiedAt: verifiedAt,
	}))

	r, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "actor", r.ActorID)
	assert.True(t, r.Verified)
	assert.Equal(t, verifiedAt.Unix(), r.VerifiedAt.Unix())

	// the record is replaced, never merged
	require.NoError(t, s.Set(ctx, &session.Record{
		ActorID:    "other",
		Verified:   false,
		VerifiedAt: verifiedAt.Add(time.Hour),
	}))

	r, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other", r.ActorID)
	assert.False(t, r.Verified)
}
