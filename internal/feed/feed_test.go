package feed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyumane/hyumane/internal/backend"
	"github.com/hyumane/hyumane/internal/backend/mock"
	"github.com/hyumane/hyumane/internal/engine"
	"github.com/hyumane/hyumane/internal/entities"
	"github.com/hyumane/hyumane/internal/view"
)

var actor = entities.ActorProfile{
	ActorID:     "actor",
	DisplayName: "Actor",
	Verified:    true,
}

func newController(t *testing.T) (*Controller, *mock.MockBackend) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	b := mock.NewMockBackend(ctrl)

	return New(actor, b, view.NewState(), engine.New()), b
}

func post(id string, likes uint32, liked bool) *entities.Post {
	return &entities.Post{
		ID:           id,
		Body:         "body " + id,
		AuthorID:     "author",
		AuthorName:   "Author",
		CreatedAt:    time.Unix(100, 0),
		LikeCount:    likes,
		LikedByActor: liked,
	}
}

func TestController_Load(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().GetPosts(gomock.Any(), "actor").Return([]*entities.Post{post("1", 2, false)}, nil)

	c.Load(context.Background())

	posts := c.State().Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)
}

func TestController_Load_FailureMeansEmpty(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 0, false)})

	b.EXPECT().GetPosts(gomock.Any(), "actor").Return(nil, context.Canceled)

	c.Load(context.Background())

	assert.Empty(t, c.State().Posts())
}

func TestController_CreatePost(t *testing.T) {
	c, b := newController(t)

	server := post("server-id", 0, false)
	server.Body = "hello"

	b.EXPECT().CreatePost(gomock.Any(), "hello", "actor").DoAndReturn(func(_ context.Context, _, _ string) error {
		// the optimistic post is already visible, first, with a temp id and zero counts
		posts := c.State().Posts()
		require.Len(t, posts, 1)
		assert.True(t, strings.HasPrefix(posts[0].ID, "local-"))
		assert.Equal(t, "hello", posts[0].Body)
		assert.Zero(t, posts[0].LikeCount)
		assert.Zero(t, posts[0].ReplyCount)
		return nil
	})
	b.EXPECT().GetPosts(gomock.Any(), "actor").Return([]*entities.Post{server}, nil)

	require.NoError(t, c.CreatePost(context.Background(), "hello"))

	posts := c.State().Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "server-id", posts[0].ID)
	assert.Equal(t, "hello", posts[0].Body)
	assert.Zero(t, posts[0].LikeCount)
	assert.Zero(t, posts[0].ReplyCount)
}

func TestController_CreatePost_RollbackOnFailure(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().CreatePost(gomock.Any(), "hello", "actor").Return(context.Canceled)

	require.Error(t, c.CreatePost(context.Background(), "hello"))
	assert.Empty(t, c.State().Posts())
}

func TestController_CreatePost_EmptyBody(t *testing.T) {
	c, _ := newController(t)

	require.Error(t, c.CreatePost(context.Background(), ""))
}

func TestController_ToggleLike(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 5, false)})

	b.EXPECT().LikePost(gomock.Any(), "1", "actor").Return(nil)

	require.NoError(t, c.ToggleLike(context.Background(), "1"))

	p, ok := c.State().Post("1")
	require.True(t, ok)
	assert.True(t, p.LikedByActor)
	assert.EqualValues(t, 6, p.LikeCount)
}

func TestController_ToggleLike_RollbackOnFailure(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 5, false)})

	b.EXPECT().LikePost(gomock.Any(), "1", "actor").Return(context.Canceled)

	require.Error(t, c.ToggleLike(context.Background(), "1"))

	p, _ := c.State().Post("1")
	assert.False(t, p.LikedByActor)
	assert.EqualValues(t, 5, p.LikeCount)
}

func TestController_ToggleLike_DuplicateConverges(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 5, false)})

	// a race with another client: the like already exists remotely, so the
	// engine issues the complementary unlike and settles on the unliked side
	b.EXPECT().LikePost(gomock.Any(), "1", "actor").Return(backend.ErrAlreadyExists)
	b.EXPECT().UnlikePost(gomock.Any(), "1", "actor").Return(nil)

	require.NoError(t, c.ToggleLike(context.Background(), "1"))

	p, _ := c.State().Post("1")
	assert.False(t, p.LikedByActor)
	assert.EqualValues(t, 5, p.LikeCount)
}

func TestController_ToggleLike_Unlike(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 5, true)})

	b.EXPECT().UnlikePost(gomock.Any(), "1", "actor").Return(nil)

	require.NoError(t, c.ToggleLike(context.Background(), "1"))

	p, _ := c.State().Post("1")
	assert.False(t, p.LikedByActor)
	assert.EqualValues(t, 4, p.LikeCount)
}

func TestController_ToggleLike_UnlikeMissingRemoteLike(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 5, true)})

	b.EXPECT().UnlikePost(gomock.Any(), "1", "actor").Return(backend.ErrNotFound)

	require.NoError(t, c.ToggleLike(context.Background(), "1"))

	p, _ := c.State().Post("1")
	assert.False(t, p.LikedByActor)
}

func TestController_ToggleLike_UnknownPost(t *testing.T) {
	c, _ := newController(t)

	assert.ErrorIs(t, c.ToggleLike(context.Background(), "nope"), ErrUnknownPost)
}

func TestController_ToggleFollow_Idempotent(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().FollowUser(gomock.Any(), "actor", "target").Return(nil)
	b.EXPECT().UnfollowUser(gomock.Any(), "actor", "target").Return(nil)

	require.NoError(t, c.ToggleFollow(context.Background(), "target"))
	assert.True(t, c.State().Following("target"))

	require.NoError(t, c.ToggleFollow(context.Background(), "target"))
	assert.False(t, c.State().Following("target"))
}

func TestController_ToggleFollow_RevertOnAnyError(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().FollowUser(gomock.Any(), "actor", "target").Return(backend.ErrAlreadyExists)

	require.Error(t, c.ToggleFollow(context.Background(), "target"))
	assert.False(t, c.State().Following("target"))
}

func TestController_CreateReply(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 0, false)})

	reply := &entities.Reply{ID: "r1", ParentID: "1", Body: "re"}
	updated := post("1", 0, false)
	updated.ReplyCount = 1

	b.EXPECT().CreateReply(gomock.Any(), "1", "re", "actor").Return(nil)
	b.EXPECT().GetReplies(gomock.Any(), "1").Return([]*entities.Reply{reply}, nil)
	b.EXPECT().GetPosts(gomock.Any(), "actor").Return([]*entities.Post{updated}, nil)

	require.NoError(t, c.CreateReply(context.Background(), "1", "re"))

	require.Len(t, c.State().Replies("1"), 1)

	p, _ := c.State().Post("1")
	assert.EqualValues(t, 1, p.ReplyCount)
}

func TestController_CreateReply_FailureIsPlainError(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().CreateReply(gomock.Any(), "1", "re", "actor").Return(context.Canceled)

	require.Error(t, c.CreateReply(context.Background(), "1", "re"))
	assert.Empty(t, c.State().Replies("1"))
}

func TestController_HandleNotification_LikeChanged(t *testing.T) {
	c, b := newController(t)
	c.State().SetPosts([]*entities.Post{post("1", 0, false), post("2", 7, false)})

	refreshed := post("1", 1, false)

	// exactly one refetch of the post list, nothing else
	b.EXPECT().GetPosts(gomock.Any(), "actor").Return([]*entities.Post{refreshed, post("2", 7, false)}, nil)

	c.HandleNotification(context.Background(), entities.Notification{Kind: entities.LikeChanged, PostID: "1"})

	posts := c.State().Posts()
	require.Len(t, posts, 2)
	assert.EqualValues(t, 1, posts[0].LikeCount)
	assert.EqualValues(t, 7, posts[1].LikeCount)
}

func TestController_HandleNotification_ReplyCreated(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().GetReplies(gomock.Any(), "1").Return([]*entities.Reply{{ID: "r1", ParentID: "1"}}, nil)
	b.EXPECT().GetPosts(gomock.Any(), "actor").Return([]*entities.Post{post("1", 0, false)}, nil)

	c.HandleNotification(context.Background(), entities.Notification{Kind: entities.ReplyCreated, PostID: "1"})

	assert.Len(t, c.State().Replies("1"), 1)
	assert.Len(t, c.State().Posts(), 1)
}

func TestController_HandleNotification_UnknownKind(t *testing.T) {
	c, _ := newController(t)

	c.HandleNotification(context.Background(), entities.Notification{Kind: "whatever", PostID: "1"})
}
