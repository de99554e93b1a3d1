// Package engine executes state changes with immediate local visibility and
// eventual consistency with the backend: apply an optimistic delta, issue the
// remote mutation, then reconcile, roll back, or converge depending on the
// outcome. One engine serves every mutation kind; the kinds differ only in
// the delta, the remote call and the reconcile strategy they carry.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
)

var log = logrus.WithField("package", "engine")

// ErrMutationInFlight is returned when a mutation targets an (entity, field)
// pair that already has an unresolved mutation. The engine rejects instead of
// queueing; callers keep the triggering control disabled until resolution.
var ErrMutationInFlight = errors.New("mutation for this target is already in flight")

// Target identifies the (entity, field) pair a mutation touches. At most one
// unconfirmed mutation per target exists at a time.
type Target struct {
	Entity string
	Field  string
}

// Mutation describes one optimistic state change.
//
// Apply and Invert must be exact inverses on the targeted fields. Invert is
// a targeted rollback, not a refetch: it restores the pre-Apply value even if
// unrelated state moved meanwhile.
type Mutation struct {
	Target Target

	// Apply publishes the optimistic delta. Optional: a creation whose only
	// visible effect arrives via Reconcile leaves it nil.
	Apply func()
	// Invert undoes Apply on generic failure. Required when Apply is set.
	Invert func()

	// Call issues the remote mutation.
	Call func(ctx context.Context) error

	// Reconcile replaces local state with authoritative remote state after a
	// successful call. Optional: toggles accept the optimistic state as-is.
	Reconcile func(ctx context.Context)

	// OnConflict converges local state with the effect already recorded
	// remotely when Call reports a duplicate. Optional: without it a
	// duplicate is handled like a generic failure.
	OnConflict func(ctx context.Context) error
}

// Engine guards the per-target in-flight set and runs mutations through the
// apply/call/reconcile protocol.
type Engine struct {
	mu       sync.Mutex
	inflight map[Target]struct{}
}

// New creates new instance of Engine.
func New() *Engine {
	return &Engine{
		inflight: map[Target]struct{}{},
	}
}

// Execute runs the mutation. The optimistic delta is visible before Execute
// issues the remote call; on return the target has no unconfirmed state.
func (e *Engine) Execute(ctx context.Context, m Mutation) error {
	if err := e.claim(m.Target); err != nil {
		return err
	}
	defer e.release(m.Target)

	if m.Apply != nil {
		m.Apply()
	}

	if err := m.Call(ctx); err != nil {
		if errors.Is(err, backend.ErrAlreadyExists) && m.OnConflict != nil {
			if err := m.OnConflict(ctx); err != nil {
				return fmt.Errorf("failed to converge after duplicate: %w", err)
			}
			return nil
		}

		if m.Invert != nil {
			m.Invert()
		}

		return fmt.Errorf("mutation failed: %w", err)
	}

	if m.Reconcile != nil {
		m.Reconcile(ctx)
	}

	return nil
}

func (e *Engine) claim(t Target) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.inflight[t]; ok {
		log.WithField("entity", t.Entity).WithField("field", t.Field).Warn("rejected overlapping mutation")
		return ErrMutationInFlight
	}

	e.inflight[t] = struct{}{}

	return nil
}

func (e *Engine) release(t Target) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.inflight, t)
}

// TempID mints a local id for a not-yet-acknowledged creation. It never
// collides with server-assigned ids.
func TempID() string {
	return "local-" + ulid.Make().String()
}
