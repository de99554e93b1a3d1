// Package feed contains the feed page controller: post, like, follow and
// reply operations over the shared view state.
package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/engine"
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/view"
)

var log = logrus.WithField("package", "feed")

// ErrUnknownPost is returned when a mutation targets a post absent from the
// local view.
var ErrUnknownPost = errors.New("unknown post")

// Controller owns the feed's view state and runs every mutation through the
// engine. The counts it shows are backend-owned; optimistic ±1 deltas are
// approximations that reconciliation overwrites.
type Controller struct {
	actor entities.ActorProfile
	b     backend.Backend
	state *view.State
	e     *engine.Engine
}

// New creates new instance of Controller.
func New(actor entities.ActorProfile, b backend.Backend, state *view.State, e *engine.Engine) *Controller {
	return &Controller{
		actor: actor,
		b:     b,
		state: state,
		e:     e,
	}
}

// State exposes the view state for rendering.
func (c *Controller) State() *view.State {
	return c.state
}

// Load refetches the post list. A failed fetch leaves an empty list, never a
// crash: the page shows its empty state instead.
func (c *Controller) Load(ctx context.Context) {
	posts, err := c.b.GetPosts(ctx, c.actor.ActorID)
	if err != nil {
		log.WithError(err).Error("failed to load posts")
		posts = []*entities.Post{}
	}

	c.state.SetPosts(posts)
}

// LoadReplies refetches one post's replies, with the same fail-to-empty policy.
func (c *Controller) LoadReplies(ctx context.Context, postID string) {
	replies, err := c.b.GetReplies(ctx, postID)
	if err != nil {
		log.WithError(err).Error("failed to load replies")
		replies = []*entities.Reply{}
	}

	c.state.SetReplies(postID, replies)
}

// LoadFollowing fetches the authoritative follow edge for a target.
func (c *Controller) LoadFollowing(ctx context.Context, targetID string) {
	following, err := c.b.IsFollowing(ctx, c.actor.ActorID, targetID)
	if err != nil {
		log.WithError(err).Error("failed to load follow state")
		return
	}

	c.state.SetFollowing(targetID, following)
}

// CreatePost publishes the post immediately under a temporary id, then
// replaces the whole list with authoritative state to pick up the
// server-assigned id and denormalized fields.
func (c *Controller) CreatePost(ctx context.Context, body string) error {
	if body == "" {
		return fmt.Errorf("empty post body")
	}

	tempID := engine.TempID()
	post := &entities.Post{
		ID:         tempID,
		Body:       body,
		AuthorID:   c.actor.ActorID,
		AuthorName: c.actor.DisplayName,
		Avatar:     c.actor.Avatar,
		CreatedAt:  time.Now(),
	}

	return c.e.Execute(ctx, engine.Mutation{
		Target:    engine.Target{Entity: tempID, Field: "post"},
		Apply:     func() { c.state.PrependPost(post) },
		Invert:    func() { c.state.RemovePost(tempID) },
		Call:      func(ctx context.Context) error { return c.b.CreatePost(ctx, body, c.actor.ActorID) },
		Reconcile: c.Load,
	})
}

// ToggleLike flips the actor's like on a post. A duplicate reported by the
// backend means another client got there first; the engine converges by
// issuing the complementary unlike instead of failing.
func (c *Controller) ToggleLike(ctx context.Context, postID string) error {
	p, ok := c.state.Post(postID)
	if !ok {
		return ErrUnknownPost
	}

	apply := func() {
		c.state.UpdatePost(postID, func(p *entities.Post) {
			p.LikedByActor = true
			p.LikeCount++
		})
	}
	invert := func() {
		c.state.UpdatePost(postID, func(p *entities.Post) {
			p.LikedByActor = false
			p.LikeCount--
		})
	}

	if p.LikedByActor {
		return c.e.Execute(ctx, engine.Mutation{
			Target: engine.Target{Entity: postID, Field: "like"},
			Apply:  invert,
			Invert: apply,
			Call: func(ctx context.Context) error {
				if err := c.b.UnlikePost(ctx, postID, c.actor.ActorID); err != nil && !errors.Is(err, backend.ErrNotFound) {
					return err
				}
				// a missing remote like already matches the optimistic state
				return nil
			},
		})
	}

	return c.e.Execute(ctx, engine.Mutation{
		Target: engine.Target{Entity: postID, Field: "like"},
		Apply:  apply,
		Invert: invert,
		Call:   func(ctx context.Context) error { return c.b.LikePost(ctx, postID, c.actor.ActorID) },
		OnConflict: func(ctx context.Context) error {
			if err := c.b.UnlikePost(ctx, postID, c.actor.ActorID); err != nil && !errors.Is(err, backend.ErrNotFound) {
				return err
			}

			invert()
			return nil
		},
	})
}

// ToggleFollow flips the follow edge to a target. Reverted on any error,
// duplicates included.
func (c *Controller) ToggleFollow(ctx context.Context, targetID string) error {
	following := c.state.Following(targetID)

	call := c.b.FollowUser
	if following {
		call = c.b.UnfollowUser
	}

	return c.e.Execute(ctx, engine.Mutation{
		Target: engine.Target{Entity: targetID, Field: "follow"},
		Apply:  func() { c.state.SetFollowing(targetID, !following) },
		Invert: func() { c.state.SetFollowing(targetID, following) },
		Call:   func(ctx context.Context) error { return call(ctx, c.actor.ActorID, targetID) },
	})
}

// CreateReply creates a reply to a post. Nothing changes optimistically in
// the post list; the reply list and the backend-owned reply count arrive via
// refetch.
func (c *Controller) CreateReply(ctx context.Context, postID, body string) error {
	if body == "" {
		return fmt.Errorf("empty reply body")
	}

	return c.e.Execute(ctx, engine.Mutation{
		Target: engine.Target{Entity: postID, Field: "replies"},
		Call:   func(ctx context.Context) error { return c.b.CreateReply(ctx, postID, body, c.actor.ActorID) },
		Reconcile: func(ctx context.Context) {
			c.LoadReplies(ctx, postID)
			c.Load(ctx)
		},
	})
}

// HandleNotification maps a live-update event to the refetch of the affected
// aggregate. Events are never applied as deltas.
func (c *Controller) HandleNotification(ctx context.Context, n entities.Notification) {
	switch n.Kind {
	case entities.LikeChanged:
		c.Load(ctx)
	case entities.ReplyCreated:
		c.LoadReplies(ctx, n.PostID)
		c.Load(ctx)
	default:
		log.WithField("kind", n.Kind).Debug("skip notification")
	}
}
