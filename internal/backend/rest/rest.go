// Package rest is implementation of backend interface over the remote HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/entities"
)

const eventsCacheKey = "events"

type rc struct {
	url string
	c   *http.Client

	// events listing is near-static, everything else is fetched fresh
	cache *cache.Cache
}

// New creates new instance of rest client.
func New(baseURL string, timeout time.Duration) backend.Backend {
	return &rc{
		url:   baseURL,
		c:     &http.Client{Timeout: timeout},
		cache: cache.New(10*time.Minute, 15*time.Minute),
	}
}

type profileDTO struct {
	ActorID     string `json:"actorId"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	Interests   string `json:"interests"`
	Verified    bool   `json:"verified"`
	Avatar      string `json:"avatar"`
	CreatedAt   int64  `json:"createdAt"`
}

type postDTO struct {
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

type replyDTO struct {
	ID         string `json:"id"`
	ParentID   string `json:"postId"`
	Body       string `json:"body"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Avatar     string `json:"avatar"`
	CreatedAt  int64  `json:"createdAt"`
}

type chatDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type messageDTO struct {
	ID        string `json:"id"`
	ChatID    string `json:"chatId"`
	Body      string `json:"body"`
	SenderID  string `json:"senderId"`
	Sender    string `json:"sender"`
	CreatedAt int64  `json:"createdAt"`
}

type eventDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Website   string `json:"website"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}

func (c *rc) do(ctx context.Context, method, path string, body, out interface{}) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close() // nolint

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return backend.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return backend.ErrAlreadyExists
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *rc) GetProfile(ctx context.Context, actorID string) (*entities.ActorProfile, error) {
	var p profileDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/profiles/%s", url.PathEscape(actorID)), nil, &p); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return toProfile(&p), nil
}

func (c *rc) CreateProfile(ctx context.Context, p *entities.ActorProfile) error {
	body := profileDTO{
		ActorID:     p.ActorID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Interests:   p.Interests,
		Verified:    p.Verified,
		Avatar:      p.Avatar,
	}

	if err := c.do(ctx, http.MethodPost, "/v1/profiles", body, nil); err != nil {
		if errors.Is(err, backend.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (c *rc) GetPosts(ctx context.Context, requestedBy string) ([]*entities.Post, error) {
	path := "/v1/posts"
	if requestedBy != "" {
		path = fmt.Sprintf("%s?requestedBy=%s", path, url.QueryEscape(requestedBy))
	}

	var dto []*postDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	out := make([]*entities.Post, len(dto))
	for i, v := range dto {
		out[i] = toPost(v)
	}

	return out, nil
}

func (c *rc) CreatePost(ctx context.Context, body, authorID string) error {
	req := struct {
		Body     string `json:"body"`
		AuthorID string `json:"authorId"`
	}{Body: body, AuthorID: authorID}

	if err := c.do(ctx, http.MethodPost, "/v1/posts", req, nil); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (c *rc) LikePost(ctx context.Context, postID, actorID string) error {
	req := struct {
		ActorID string `json:"actorId"`
	}{ActorID: actorID}

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/posts/%s/likes", url.PathEscape(postID)), req, nil); err != nil {
		if errors.Is(err, backend.ErrNotFound) || errors.Is(err, backend.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to like post: %w", err)
	}

	return nil
}

func (c *rc) UnlikePost(ctx context.Context, postID, actorID string) error {
	path := fmt.Sprintf("/v1/posts/%s/likes/%s", url.PathEscape(postID), url.PathEscape(actorID))

	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		if errors.Is(err, backend.ErrNotFound) || errors.Is(err, backend.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to unlike post: %w", err)
	}

	return nil
}

func (c *rc) GetReplies(ctx context.Context, postID string) ([]*entities.Reply, error) {
	var dto []*replyDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/posts/%s/replies", url.PathEscape(postID)), nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get replies: %w", err)
	}

	out := make([]*entities.Reply, len(dto))
	for i, v := range dto {
		out[i] = &entities.Reply{
			ID:         v.ID,
			ParentID:   v.ParentID,
			Body:       v.Body,
			AuthorID:   v.AuthorID,
			AuthorName: v.AuthorName,
			Avatar:     v.Avatar,
			CreatedAt:  time.Unix(v.CreatedAt, 0),
		}
	}

	return out, nil
}

func (c *rc) CreateReply(ctx context.Context, postID, body, authorID string) error {
	req := struct {
		Body     string `json:"body"`
		AuthorID string `json:"authorId"`
	}{Body: body, AuthorID: authorID}

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/posts/%s/replies", url.PathEscape(postID)), req, nil); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to create reply: %w", err)
	}

	return nil
}

func (c *rc) FollowUser(ctx context.Context, actorID, targetID string) error {
	req := struct {
		ActorID  string `json:"actorId"`
		TargetID string `json:"targetId"`
	}{ActorID: actorID, TargetID: targetID}

	if err := c.do(ctx, http.MethodPost, "/v1/follows", req, nil); err != nil {
		if errors.Is(err, backend.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to follow user: %w", err)
	}

	return nil
}

func (c *rc) UnfollowUser(ctx context.Context, actorID, targetID string) error {
	path := fmt.Sprintf("/v1/follows/%s/%s", url.PathEscape(actorID), url.PathEscape(targetID))

	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	return nil
}

func (c *rc) IsFollowing(ctx context.Context, actorID, targetID string) (bool, error) {
	path := fmt.Sprintf("/v1/follows/%s/%s", url.PathEscape(actorID), url.PathEscape(targetID))

	var resp struct {
		Following bool `json:"following"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get follow state: %w", err)
	}

	return resp.Following, nil
}

func (c *rc) GetChats(ctx context.Context, actorID string) ([]*entities.Chat, error) {
	var dto []*chatDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/chats?actor=%s", url.QueryEscape(actorID)), nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get chats: %w", err)
	}

	out := make([]*entities.Chat, len(dto))
	for i, v := range dto {
		out[i] = &entities.Chat{
			ID:          v.ID,
			Name:        v.Name,
			LastMessage: v.LastMessage,
			UpdatedAt:   time.Unix(v.UpdatedAt, 0),
		}
	}

	return out, nil
}

func (c *rc) GetMessages(ctx context.Context, chatID, actorID string) ([]*entities.Message, error) {
	var dto []*messageDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/chats/%s/messages", url.PathEscape(chatID)), nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	out := make([]*entities.Message, len(dto))
	for i, v := range dto {
		out[i] = &entities.Message{
			ID:        v.ID,
			ChatID:    v.ChatID,
			Body:      v.Body,
			SenderID:  v.SenderID,
			Sender:    v.Sender,
			Own:       v.SenderID == actorID,
			CreatedAt: time.Unix(v.CreatedAt, 0),
		}
	}

	return out, nil
}

func (c *rc) SendMessage(ctx context.Context, chatID, body, senderID string) error {
	req := struct {
		Body     string `json:"body"`
		SenderID string `json:"senderId"`
	}{Body: body, SenderID: senderID}

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/chats/%s/messages", url.PathEscape(chatID)), req, nil); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (c *rc) GetEvents(ctx context.Context) ([]*entities.Event, error) {
	if v, ok := c.cache.Get(eventsCacheKey); ok {
		return v.([]*entities.Event), nil
	}

	var dto []*eventDTO
	if err := c.do(ctx, http.MethodGet, "/v1/events", nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	out := make([]*entities.Event, len(dto))
	for i, v := range dto {
		out[i] = &entities.Event{
			ID:        v.ID,
			Title:     v.Title,
			Image:     v.Image,
			Website:   v.Website,
			StartDate: time.Unix(v.StartDate, 0),
			EndDate:   time.Unix(v.EndDate, 0),
		}
	}

	c.cache.Set(eventsCacheKey, out, cache.DefaultExpiration)

	return out, nil
}

func toProfile(p *profileDTO) *entities.ActorProfile {
	return &entities.ActorProfile{
		ActorID:     p.ActorID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Interests:   p.Interests,
		Verified:    p.Verified,
		Avatar:      p.Avatar,
		CreatedAt:   time.Unix(p.CreatedAt, 0),
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:           p.ID,
		Body:         p.Body,
		AuthorID:     p.AuthorID,
		AuthorName:   p.AuthorName,
		Avatar:       p.Avatar,
		CreatedAt:    time.Unix(p.CreatedAt, 0),
		LikeCount:    p.LikeCount,
		LikedByActor: p.LikedByActor,
		ReplyCount:   p.ReplyCount,
	}
}
