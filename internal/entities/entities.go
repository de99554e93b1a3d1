// Package entities contains client-side projections of remote records.
package entities

import (
	"time"
)

// ActorProfile ...
type ActorProfile struct {
	ActorID     string
	DisplayName string
	Bio         string
	Interests   string
	Verified    bool
	Avatar      string
	CreatedAt   time.Time
}

// Post is a feed entry as the client sees it. LikeCount, LikedByActor and
// ReplyCount are the only fields the client mutates, and only optimistically.
type Post struct {
	ID           string
	Body         string
	AuthorID     string
	AuthorName   string
	Avatar       string
	CreatedAt    time.Time
	LikeCount    uint32
	LikedByActor bool
	ReplyCount   uint32
}

// Reply ...
type Reply struct {
	ID         string
	ParentID   string
	Body       string
	AuthorID   string
	AuthorName string
	Avatar     string
	CreatedAt  time.Time
}

// Chat is a conversation head shown in the chat list.
type Chat struct {
	ID          string
	Name        string
	LastMessage string
	UpdatedAt   time.Time
}

// Message ...
type Message struct {
	ID        string
	ChatID    string
	Body      string
	SenderID  string
	Sender    string
	Own       bool
	CreatedAt time.Time
}

// Event is an external community event shown on the events page.
type Event struct {
	ID        string
	Title     string
	Image     string
	Website   string
	StartDate time.Time
	EndDate   time.Time
}

// NotificationKind ...
type NotificationKind string

const (
	// LikeChanged signals that somebody's like on a post changed remotely.
	LikeChanged NotificationKind = "like-changed"
	// ReplyCreated signals that a reply was created on a post remotely.
	ReplyCreated NotificationKind = "reply-created"
)

// Notification is an unsolicited signal that remote state changed. It is
// always treated as an invitation to refetch, never as a delta.
type Notification struct {
	Kind   NotificationKind `json:"kind"`
	PostID string           `json:"affectedPostId"`
}
