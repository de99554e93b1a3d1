// Package session contains the gate which decides who the current actor is
// before any protected view is allowed to render.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/entities"
)

//go:generate mockgen -destination=./mock/session.go -package=mock -source=session.go

var log = logrus.WithField("package", "session")

// ErrNotFound is returned by Store when no record is persisted.
var ErrNotFound = fmt.Errorf("not found")

// ErrUnauthenticated is returned when an operation requires a verified record
// and there is none.
var ErrUnauthenticated = errors.New("unauthenticated")

// Record is the persisted verification record. It is written only by the
// verification flow and never updated, only replaced.
type Record struct {
	ActorID    string
	Verified   bool
	VerifiedAt time.Time
}

// Store is a durable key-value read/write of one record.
type Store interface {
	Get(ctx context.Context) (*Record, error)
	Set(ctx context.Context, r *Record) error
}

// Status ...
type Status string

const (
	// StatusUnauthenticated routes the user back to verification.
	StatusUnauthenticated Status = "unauthenticated"
	// StatusNeedsProfile routes the user to profile creation.
	StatusNeedsProfile Status = "needs_profile"
	// StatusReady allows protected content to render.
	StatusReady Status = "ready"
)

// Resolution is the gate's routing decision. Actor is set only for StatusReady.
type Resolution struct {
	Status Status
	Actor  *entities.ActorProfile
}

// Gate resolves the current actor from the persisted record and a live
// profile lookup.
type Gate struct {
	store Store
	b     backend.Backend
}

// NewGate creates new instance of Gate.
func NewGate(store Store, b backend.Backend) *Gate {
	return &Gate{
		store: store,
		b:     b,
	}
}

// Resolve decides whether the current actor is an identified, verified human.
// It fails closed: any read or fetch error yields StatusUnauthenticated.
func (g *Gate) Resolve(ctx context.Context) Resolution {
	r, err := g.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("failed to read session record")
		}
		return Resolution{Status: StatusUnauthenticated}
	}

	if r.ActorID == "" || !r.Verified {
		return Resolution{Status: StatusUnauthenticated}
	}

	p, err := g.b.GetProfile(ctx, r.ActorID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return Resolution{Status: StatusNeedsProfile}
		}

		log.WithError(err).Error("failed to fetch actor profile")
		return Resolution{Status: StatusUnauthenticated}
	}

	return Resolution{
		Status: StatusReady,
		Actor:  p,
	}
}

// CreateProfile publishes the profile for the verified actor, completing the
// needs_profile leg of the gate. The actor identity and verified flag come
// from the persisted record, never from the caller.
func (g *Gate) CreateProfile(ctx context.Context, p *entities.ActorProfile) error {
	r, err := g.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("failed to read session record")
		}
		return ErrUnauthenticated
	}

	if r.ActorID == "" || !r.Verified {
		return ErrUnauthenticated
	}

	p.ActorID = r.ActorID
	p.Verified = true

	if err := g.b.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, backend.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}
