package core

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gwi.com/neon-marketplace/internal/store"
)

const DefaultReplyDelay = time.Second

type ChatService struct {
	conversations *store.Conversations
	catalog       *store.Catalog
	scheduler     *ReplyScheduler
	responder     Responder
	ids           *store.Sequence
	clock         clockwork.Clock
	log           *slog.Logger
	replyDelay    time.Duration
}

func NewChatService(conversations *store.Conversations, catalog *store.Catalog, scheduler *ReplyScheduler, responder Responder, clock clockwork.Clock, log *slog.Logger, replyDelay time.Duration) *ChatService {
	return &ChatService{
		conversations: conversations,
		catalog:       catalog,
		scheduler:     scheduler,
		responder:     responder,
		ids:           store.NewSequence(0),
		clock:         clock,
		log:           log,
		replyDelay:    replyDelay,
	}
}

// OpenConversation discards the previous thread and starts a new one for
// product, seeded with the buyer's opening question.
func (s *ChatService) OpenConversation(product store.Product) store.Conversation {
	opening := store.Message{
		ID:        s.ids.Next(),
		Text:      openingMessage(product),
		Sender:    store.SenderUser,
		Timestamp: s.clock.Now(),
	}
	conv := s.conversations.Open(uuid.NewString(), product, opening)
	s.log.Info("conversation opened", "conversation_id", conv.ID, "product_id", product.ID)
	return conv
}

// OpenConversationFor looks the product up in the catalog first.
func (s *ChatService) OpenConversationFor(productID int64) (store.Conversation, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return store.Conversation{}, ErrProductNotFound
	}
	return s.OpenConversation(product), nil
}

// Send appends the buyer's message, clears the compose field and schedules
// one seller reply. The reply is not tied to the thread it answers: when it
// fires it lands in whichever thread is current, open or closed.
func (s *ChatService) Send(text string) (store.Message, error) {
	if strings.TrimSpace(text) == "" {
		return store.Message{}, ErrEmptyMessage
	}
	conv, ok := s.conversations.Current()
	if !ok {
		return store.Message{}, ErrNoConversation
	}

	msg := store.Message{
		ID:        s.ids.Next(),
		Text:      text,
		Sender:    store.SenderUser,
		Timestamp: s.clock.Now(),
	}
	s.conversations.Append(msg)
	s.conversations.SetCompose("")

	product := conv.Product
	s.scheduler.Schedule(s.replyDelay, func() {
		s.deliverReply(product, text)
	})
	return msg, nil
}

func (s *ChatService) deliverReply(product store.Product, userText string) {
	reply := store.Message{
		ID:        s.ids.Next(),
		Text:      s.responder.Reply(product, userText),
		Sender:    store.SenderSeller,
		Timestamp: s.clock.Now(),
	}
	convID, ok := s.conversations.Append(reply)
	if !ok {
		s.log.Warn("seller reply dropped, no conversation", "product_id", product.ID)
		return
	}
	s.log.Debug("seller replied", "conversation_id", convID, "message_id", reply.ID)
}

// Close hides the thread. Pending replies still fire.
func (s *ChatService) Close() { s.conversations.Close() }

func (s *ChatService) Current() (store.Conversation, bool) { return s.conversations.Current() }

func (s *ChatService) UpdateCompose(text string) { s.conversations.SetCompose(text) }

func (s *ChatService) Compose() string { return s.conversations.Compose() }

// PendingReplies is the number of seller replies not yet delivered.
func (s *ChatService) PendingReplies() int { return s.scheduler.Pending() }
