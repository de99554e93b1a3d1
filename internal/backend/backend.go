// Package backend contains the contract of the remote data/query layer.
package backend

import (
	"context"
	"fmt"

	"github.com/hyumane/hyumane/internal/entities"
)

//go:generate mockgen -destination=./mock/backend.go -package=mock -source=backend.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when a mutation is rejected because its effect
// is already recorded remotely (unique-constraint violation). Callers resolve
// it with a compensating call, never with a plain rollback.
var ErrAlreadyExists = fmt.Errorf("already exists")

// Backend provides methods for interacting with the remote service.
type Backend interface {
	GetProfile(ctx context.Context, actorID string) (*entities.ActorProfile, error)
	CreateProfile(ctx context.Context, p *entities.ActorProfile) error

	GetPosts(ctx context.Context, requestedBy string) ([]*entities.Post, error)
	CreatePost(ctx context.Context, body, authorID string) error

	LikePost(ctx context.Context, postID, actorID string) error
	UnlikePost(ctx context.Context, postID, actorID string) error

	GetReplies(ctx context.Context, postID string) ([]*entities.Reply, error)
	CreateReply(ctx context.Context, postID, body, authorID string) error

	FollowUser(ctx context.Context, actorID, targetID string) error
	UnfollowUser(ctx context.Context, actorID, targetID string) error
	IsFollowing(ctx context.Context, actorID, targetID string) (bool, error)

	GetChats(ctx context.Context, actorID string) ([]*entities.Chat, error)
	GetMessages(ctx context.Context, chatID, actorID string) ([]*entities.Message, error)
	SendMessage(ctx context.Context, chatID, body, senderID string) error

	GetEvents(ctx context.Context) ([]*entities.Event, error)
}

// Stream is a source of live-update notifications. Delivery is at-least-once
// and unordered relative to local mutations.
type Stream interface {
	Subscribe(ctx context.Context) (<-chan entities.Notification, error)
}
