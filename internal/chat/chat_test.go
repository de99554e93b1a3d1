package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestController_LoadChats(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().GetChats(gomock.Any(), "actor").Return([]*entities.Chat{
		{ID: "1", Name: "Sarah", LastMessage: "hi"},
	}, nil)

	c.LoadChats(context.Background())

	chats := c.State().Chats()
	require.Len(t, chats, 1)
	assert.Equal(t, "Sarah", chats[0].Name)
}

func TestController_LoadChats_FailureMeansEmpty(t *testing.T) {
	c, b := newController(t)
	c.State().SetChats([]*entities.Chat{{ID: "1"}})

	b.EXPECT().GetChats(gomock.Any(), "actor").Return(nil, context.Canceled)

	c.LoadChats(context.Background())

	assert.Empty(t, c.State().Chats())
}

func TestController_SendMessage(t *testing.T) {
	c, b := newController(t)

	server := &entities.Message{ID: "m1", ChatID: "1", Body: "hello", SenderID: "actor", Own: true}

	b.EXPECT().SendMessage(gomock.Any(), "1", "hello", "actor").DoAndReturn(func(_ context.Context, _, _, _ string) error {
		// optimistic message is already visible under a temp id
		msgs := c.State().Messages("1")
		require.Len(t, msgs, 1)
		assert.True(t, strings.HasPrefix(msgs[0].ID, "local-"))
		assert.True(t, msgs[0].Own)
		return nil
	})
	b.EXPECT().GetMessages(gomock.Any(), "1", "actor").Return([]*entities.Message{server}, nil)

	require.NoError(t, c.SendMessage(context.Background(), "1", "hello"))

	msgs := c.State().Messages("1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "m1", msgs[0].ID)
}

func TestController_SendMessage_RollbackOnFailure(t *testing.T) {
	c, b := newController(t)

	b.EXPECT().SendMessage(gomock.Any(), "1", "hello", "actor").Return(context.Canceled)

	require.Error(t, c.SendMessage(context.Background(), "1", "hello"))
	assert.Empty(t, c.State().Messages("1"))
}

func TestController_SendMessage_EmptyBody(t *testing.T) {
	c, _ := newController(t)

	require.Error(t, c.SendMessage(context.Background(), "1", ""))
}
