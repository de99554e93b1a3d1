// Package chat contains the chat page controller.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/engine"
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/view"
)

var log = logrus.WithField("package", "chat")

// Controller runs chat reads and the send-message mutation over the shared
// view state.
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

// LoadChats refetches the chat list; failures leave an empty list.
func (c *Controller) LoadChats(ctx context.Context) {
	chats, err := c.b.GetChats(ctx, c.actor.ActorID)
	if err != nil {
		log.WithError(err).Error("failed to load chats")
		chats = []*entities.Chat{}
	}

	c.state.SetChats(chats)
}

// LoadMessages refetches one chat's messages; failures leave an empty list.
func (c *Controller) LoadMessages(ctx context.Context, chatID string) {
	messages, err := c.b.GetMessages(ctx, chatID, c.actor.ActorID)
	if err != nil {
		log.WithError(err).Error("failed to load messages")
		messages = []*entities.Message{}
	}

	c.state.SetMessages(chatID, messages)
}

// SendMessage appends the message immediately under a temporary id, then
// refetches the chat to pick up the server-assigned id. One send per chat is
// in flight at a time; the page disables its send control meanwhile.
func (c *Controller) SendMessage(ctx context.Context, chatID, body string) error {
	if body == "" {
		return fmt.Errorf("empty message body")
	}

	tempID := engine.TempID()
	msg := &entities.Message{
		ID:        tempID,
		ChatID:    chatID,
		Body:      body,
		SenderID:  c.actor.ActorID,
		Sender:    c.actor.DisplayName,
		Own:       true,
		CreatedAt: time.Now(),
	}

	return c.e.Execute(ctx, engine.Mutation{
		Target: engine.Target{Entity: chatID, Field: "messages"},
		Apply:  func() { c.state.AppendMessage(msg) },
		Invert: func() { c.state.RemoveMessage(chatID, tempID) },
		Call:   func(ctx context.Context) error { return c.b.SendMessage(ctx, chatID, body, c.actor.ActorID) },
		Reconcile: func(ctx context.Context) {
			c.LoadMessages(ctx, chatID)
		},
	})
}
