package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gwi.com/neon-marketplace/internal/core/mocks"
	"gwi.com/neon-marketplace/internal/store"
)

const waitFor = 2 * time.Second
const tick = 10 * time.Millisecond

func iphone() store.Product {
	return store.Product{ID: 1, Name: "iPhone 15", Seller: "Ivan", Category: "Электроника", Price: 50000}
}

func messageCount(svc *ChatService) int {
	c, _ := svc.Current()
	return len(c.Messages)
}

func TestChatService_OpenConversation(t *testing.T) {
	req := require.New(t)
	f := newFixture(false)

	conv := f.chatSvc.OpenConversation(iphone())

	req.True(conv.Open)
	req.NotEmpty(conv.ID)
	req.Len(conv.Messages, 1)
	req.Equal(store.SenderUser, conv.Messages[0].Sender)
	req.Contains(conv.Messages[0].Text, "iPhone 15")
	req.Equal("Здравствуйте! Интересует iPhone 15. Товар ещё актуален?", conv.Messages[0].Text)
	req.Equal(epoch, conv.Messages[0].Timestamp)
}

func TestChatService_OpenConversationDiscardsPreviousThread(t *testing.T) {
	req := require.New(t)
	f := newFixture(false)
	first := f.chatSvc.OpenConversation(iphone())
	_, err := f.chatSvc.Send("Цена финальная?")
	req.NoError(err)

	second := f.chatSvc.OpenConversation(store.Product{ID: 2, Name: "PS5"})

	req.NotEqual(first.ID, second.ID)
	req.Len(second.Messages, 1)
	req.Contains(second.Messages[0].Text, "PS5")
}

func TestChatService_OpenConversationFor(t *testing.T) {
	f := newFixture(false)
	f.catalog.Prepend(iphone())

	conv, err := f.chatSvc.OpenConversationFor(1)
	require.NoError(t, err)
	require.Equal(t, "iPhone 15", conv.Product.Name)

	_, err = f.chatSvc.OpenConversationFor(404)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestChatService_Send(t *testing.T) {
	t.Run("should append immediately and reply after the delay", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.chatSvc.OpenConversation(iphone())
		f.chatSvc.UpdateCompose("Цена финальная?")

		msg, err := f.chatSvc.Send(f.chatSvc.Compose())

		req.NoError(err)
		req.Equal(store.SenderUser, msg.Sender)
		req.Equal("", f.chatSvc.Compose())
		req.Equal(2, messageCount(f.chatSvc))
		req.Equal(1, f.chatSvc.PendingReplies())

		f.clock.Advance(DefaultReplyDelay - time.Millisecond)
		req.Equal(2, messageCount(f.chatSvc))

		f.clock.Advance(time.Millisecond)
		req.Eventually(func() bool { return messageCount(f.chatSvc) == 3 }, waitFor, tick)

		c, _ := f.chatSvc.Current()
		reply := c.Messages[2]
		req.Equal(store.SenderSeller, reply.Sender)
		req.Equal(scriptedSellerReply, reply.Text)
		req.Equal(0, f.chatSvc.PendingReplies())
	})

	t.Run("should still reply after the view is closed", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.chatSvc.OpenConversation(iphone())
		_, err := f.chatSvc.Send("Цена финальная?")
		req.NoError(err)

		f.chatSvc.Close()
		f.clock.Advance(DefaultReplyDelay)

		req.Eventually(func() bool { return messageCount(f.chatSvc) == 3 }, waitFor, tick)
		c, _ := f.chatSvc.Current()
		req.False(c.Open)
		req.Equal(store.SenderSeller, c.Messages[2].Sender)
	})

	t.Run("should deliver a late reply into the newest thread", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.chatSvc.OpenConversation(iphone())
		_, err := f.chatSvc.Send("Цена финальная?")
		req.NoError(err)

		second := f.chatSvc.OpenConversation(store.Product{ID: 2, Name: "PS5"})
		f.clock.Advance(DefaultReplyDelay)

		req.Eventually(func() bool { return messageCount(f.chatSvc) == 2 }, waitFor, tick)
		c, _ := f.chatSvc.Current()
		req.Equal(second.ID, c.ID)
		req.Equal(store.SenderSeller, c.Messages[1].Sender)
	})

	t.Run("should ignore blank text", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.chatSvc.OpenConversation(iphone())
		f.chatSvc.UpdateCompose("   ")

		_, err := f.chatSvc.Send("   \n")

		req.ErrorIs(err, ErrEmptyMessage)
		req.Equal(1, messageCount(f.chatSvc))
		req.Equal("   ", f.chatSvc.Compose())
		req.Equal(0, f.chatSvc.PendingReplies())
	})

	t.Run("should refuse to send before any conversation", func(t *testing.T) {
		f := newFixture(false)

		_, err := f.chatSvc.Send("hello")

		require.ErrorIs(t, err, ErrNoConversation)
		require.Equal(t, 0, f.chatSvc.PendingReplies())
	})

	t.Run("should ask the responder with the product and text", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		responder := mocks.NewMockResponder(ctrl)
		responder.EXPECT().Reply(iphone(), "Торг уместен?").Return("Да").Times(1)
		f := newFixture(false)
		svc := NewChatService(f.conversations, f.catalog, f.scheduler, responder, f.clock, discardLogger(), 5*time.Second)
		svc.OpenConversation(iphone())

		_, err := svc.Send("Торг уместен?")
		req.NoError(err)
		f.clock.Advance(5 * time.Second)

		req.Eventually(func() bool { return messageCount(svc) == 3 }, waitFor, tick)
		c, _ := svc.Current()
		req.Equal("Да", c.Messages[2].Text)
	})
}
