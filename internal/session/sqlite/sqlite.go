// Package sqlite is implementation of session store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/hyumane/hyumane/internal/session"
)

// recordName is the fixed key the single verification record is stored under.
const recordName = "verification"

type store struct {
	db *sqlx.DB
}

type recordDTO struct {
	ActorID    string `db:"actor_id"`
	Verified   bool   `db:"verified"`
	VerifiedAt int64  `db:"verified_at"`
}

// New creates new instance of store.
func New(db *sql.DB) session.Store {
	return store{
		db: sqlx.NewDb(db, "sqlite"),
	}
}

func (s store) Get(ctx context.Context) (*session.Record, error) {
	var r recordDTO

	if err := sqlx.GetContext(ctx, s.db, &r, `
			SELECT actor_id, verified, verified_at FROM session WHERE name = ?
		`, recordName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &session.Record{
		ActorID:    r.ActorID,
		Verified:   r.Verified,
		VerifiedAt: time.Unix(r.VerifiedAt, 0),
	}, nil
}

func (s store) Set(ctx context.Context, r *session.Record) error {
	if _, err := s.db.ExecContext(ctx, `
			INSERT INTO session(name, actor_id, verified, verified_at) VALUES(?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				actor_id=excluded.actor_id, verified=excluded.verified, verified_at=excluded.verified_at
		`, recordName, r.ActorID, r.Verified, r.VerifiedAt.Unix(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
