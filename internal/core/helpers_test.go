package core

import (
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"gwi.com/neon-marketplace/internal/store"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	clock         clockwork.FakeClock
	catalog       *store.Catalog
	interactions  *store.Interactions
	session       *store.Session
	conversations *store.Conversations
	scheduler     *ReplyScheduler

	catalogSvc     *CatalogService
	interactionSvc *InteractionService
	sessionSvc     *SessionService
	chatSvc        *ChatService
}

func newFixture(requireSession bool) *fixture {
	f := &fixture{
		clock:         clockwork.NewFakeClockAt(epoch),
		catalog:       store.NewCatalog(),
		interactions:  store.NewInteractions(),
		session:       store.NewSession(),
		conversations: store.NewConversations(),
	}
	log := discardLogger()
	f.scheduler = NewReplyScheduler(f.clock)
	f.catalogSvc = NewCatalogService(f.catalog, f.session, f.clock, log, requireSession)
	f.interactionSvc = NewInteractionService(f.interactions, f.catalog, log, DefaultRecommendationLimit)
	f.sessionSvc = NewSessionService(f.session, NewMockIdentityProvider(), log)
	f.chatSvc = NewChatService(f.conversations, f.catalog, f.scheduler, ScriptedResponder{}, f.clock, log, DefaultReplyDelay)
	return f
}

func productIDs(products []store.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
