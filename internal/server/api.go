package server

import (
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/events"
	"github.com/hyumane/hyumane/internal/session"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// SessionResponse ...
type SessionResponse struct {
	Status session.Status `json:"status"`
	Actor  *Profile       `json:"actor,omitempty"`
}

// Profile ...
type Profile struct {
	ActorID     string `json:"actorId"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	Interests   string `json:"interests"`
	Verified    bool   `json:"verified"`
	Avatar      string `json:"avatar"`
}

// Post ...
type Post struct {
	ID           string `json:"id"`
	Body         string `json:"body"`
	AuthorID     string `json:"authorId"`
	AuthorName   string `json:"authorName"`
	Avatar       string `json:"avatar"`
	CreatedAt    int64  `json:"createdAt"`
	LikeCount    uint32 `json:"likesCount"`
	LikedByActor bool   `json:"liked"`
	ReplyCount   uint32 `json:"repliesCount"`
}

// Reply ...
type Reply struct {
	ID         string `json:"id"`
	PostID     string `json:"postId"`
	Body       string `json:"body"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Avatar     string `json:"avatar"`
	CreatedAt  int64  `json:"createdAt"`
}

// Chat ...
type Chat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Message ...
type Message struct {
	ID        string `json:"id"`
	ChatID    string `json:"chatId"`
	Body      string `json:"body"`
	SenderID  string `json:"senderId"`
	Sender    string `json:"sender"`
	Own       bool   `json:"own"`
	CreatedAt int64  `json:"createdAt"`
}

// Event ...
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Website   string `json:"website"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}

// ScheduleResponse ...
type ScheduleResponse struct {
	Upcoming []*Event `json:"upcoming"`
	Ongoing  []*Event `json:"ongoing"`
	Past     []*Event `json:"past"`
}

// FollowResponse ...
type FollowResponse struct {
	Following bool `json:"following"`
}

func toAPIProfile(p *entities.ActorProfile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		ActorID:     p.ActorID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Interests:   p.Interests,
		Verified:    p.Verified,
		Avatar:      p.Avatar,
	}
}

func toAPIPosts(posts []*entities.Post) []*Post {
	out := make([]*Post, len(posts))
	for i, v := range posts {
		out[i] = &Post{
			ID:           v.ID,
			Body:         v.Body,
			AuthorID:     v.AuthorID,
			AuthorName:   v.AuthorName,
			Avatar:       v.Avatar,
			CreatedAt:    v.CreatedAt.Unix(),
			LikeCount:    v.LikeCount,
			LikedByActor: v.LikedByActor,
			ReplyCount:   v.ReplyCount,
		}
	}

	return out
}

func toAPIReplies(replies []*entities.Reply) []*Reply {
	out := make([]*Reply, len(replies))
	for i, v := range replies {
		out[i] = &Reply{
			ID:         v.ID,
			PostID:     v.ParentID,
			Body:       v.Body,
			AuthorID:   v.AuthorID,
			AuthorName: v.AuthorName,
			Avatar:     v.Avatar,
			CreatedAt:  v.CreatedAt.Unix(),
		}
	}

	return out
}

func toAPIChats(chats []*entities.Chat) []*Chat {
	out := make([]*Chat, len(chats))
	for i, v := range chats {
		out[i] = &Chat{
			ID:          v.ID,
			Name:        v.Name,
			LastMessage: v.LastMessage,
			UpdatedAt:   v.UpdatedAt.Unix(),
		}
	}

	return out
}

func toAPIMessages(messages []*entities.Message) []*Message {
	out := make([]*Message, len(messages))
	for i, v := range messages {
		out[i] = &Message{
			ID:        v.ID,
			ChatID:    v.ChatID,
			Body:      v.Body,
			SenderID:  v.SenderID,
			Sender:    v.Sender,
			Own:       v.Own,
			CreatedAt: v.CreatedAt.Unix(),
		}
	}

	return out
}

func toAPIEvents(events []*entities.Event) []*Event {
	out := make([]*Event, len(events))
	for i, v := range events {
		out[i] = &Event{
			ID:        v.ID,
			Title:     v.Title,
			Image:     v.Image,
			Website:   v.Website,
			StartDate: v.StartDate.Unix(),
			EndDate:   v.EndDate.Unix(),
		}
	}

	return out
}

func toAPISchedule(s events.Schedule) ScheduleResponse {
	return ScheduleResponse{
		Upcoming: toAPIEvents(s.Upcoming),
		Ongoing:  toAPIEvents(s.Ongoing),
		Past:     toAPIEvents(s.Past),
	}
}
