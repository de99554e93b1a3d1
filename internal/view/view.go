// Package view contains the local view state: the client-owned projection of
// remote collections. All writes go through the mutation engine's delta,
// rollback and reconcile steps or through refetch loaders; nothing else
// touches the collections.
package view

import (
	"sync"

	"github.com/hyumane/hyumane/internal/entities"
)

// State holds the collections a page renders from. Reads return copies so a
// renderer never observes a half-applied delta. Targeted updates on absent
// ids are no-ops: a mutation resolving after the page stopped observing the
// state must not fail.
type State struct {
	mu sync.Mutex

	posts     []*entities.Post
	replies   map[string][]*entities.Reply
	following map[string]bool
	chats     []*entities.Chat
	messages  map[string][]*entities.Message
}

// NewState creates new instance of State.
func NewState() *State {
	return &State{
		replies:   map[string][]*entities.Reply{},
		following: map[string]bool{},
		messages:  map[string][]*entities.Message{},
	}
}

// Posts returns a copy of the post list.
func (s *State) Posts() []*entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Post, len(s.posts))
	for i, v := range s.posts {
		p := *v
		out[i] = &p
	}

	return out
}

// Post returns a copy of a single post.
func (s *State) Post(id string) (*entities.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.posts {
		if v.ID == id {
			p := *v
			return &p, true
		}
	}

	return nil, false
}

// SetPosts replaces the post list wholesale. Used by reconciliation and
// live-update refetches; the later writer wins.
func (s *State) SetPosts(posts []*entities.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = posts
}

// PrependPost puts a post at the head of the list.
func (s *State) PrependPost(p *entities.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]*entities.Post{p}, s.posts...)
}

// RemovePost drops a post from the list.
func (s *State) RemovePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.posts {
		if v.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

// UpdatePost applies f to the post with the given id, if present.
func (s *State) UpdatePost(id string, f func(p *entities.Post)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.posts {
		if v.ID == id {
			f(v)
			return
		}
	}
}

// Replies returns a copy of a post's replies.
func (s *State) Replies(postID string) []*entities.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Reply, len(s.replies[postID]))
	for i, v := range s.replies[postID] {
		r := *v
		out[i] = &r
	}

	return out
}

// SetReplies replaces a post's replies wholesale.
func (s *State) SetReplies(postID string, replies []*entities.Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replies[postID] = replies
}

// Following reports the local follow-edge value for a target.
func (s *State) Following(targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.following[targetID]
}

// SetFollowing sets the local follow-edge value for a target.
func (s *State) SetFollowing(targetID string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.following[targetID] = v
}

// Chats returns a copy of the chat list.
func (s *State) Chats() []*entities.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Chat, len(s.chats))
	for i, v := range s.chats {
		c := *v
		out[i] = &c
	}

	return out
}

// SetChats replaces the chat list wholesale.
func (s *State) SetChats(chats []*entities.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = chats
}

// Messages returns a copy of a chat's messages.
func (s *State) Messages(chatID string) []*entities.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Message, len(s.messages[chatID]))
	for i, v := range s.messages[chatID] {
		m := *v
		out[i] = &m
	}

	return out
}

// SetMessages replaces a chat's messages wholesale.
func (s *State) SetMessages(chatID string, messages []*entities.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[chatID] = messages
}

// AppendMessage puts a message at the tail of a chat.
func (s *State) AppendMessage(m *entities.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[m.ChatID] = append(s.messages[m.ChatID], m)
}

// RemoveMessage drops a message from a chat.
func (s *State) RemoveMessage(chatID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.messages[chatID] {
		if v.ID == id {
			s.messages[chatID] = append(s.messages[chatID][:i], s.messages[chatID][i+1:]...)
			return
		}
	}
}
