package core

import (
	"fmt"

	"gwi.com/neon-marketplace/internal/store"
)

//go:generate mockgen -source=responder.go -destination=mocks/mock_responder.go -package=mocks

const (
	openingMessageTemplate = "Здравствуйте! Интересует %s. Товар ещё актуален?"
	scriptedSellerReply    = "Спасибо за интерес! Товар в наличии. Когда вам удобно посмотреть?"
)

// Responder produces the seller side of a conversation.
type Responder interface {
	Reply(product store.Product, userText string) string
}

// ScriptedResponder answers every message with the same line.
type ScriptedResponder struct{}

func (ScriptedResponder) Reply(store.Product, string) string { return scriptedSellerReply }

func openingMessage(product store.Product) string {
	return fmt.Sprintf(openingMessageTemplate, product.Name)
}
