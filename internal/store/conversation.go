package store

import "sync"

// Conversations keeps the single chat thread tied to the selected product,
// plus the compose field. Opening a new thread replaces the old one.
type Conversations struct {
	mu      sync.RWMutex
	current *Conversation
	compose string
}

func NewConversations() *Conversations {
	return &Conversations{}
}

// Open replaces the current thread with a new one seeded by the given messages.
func (s *Conversations) Open(id string, product Product, seed ...Message) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Conversation{
		ID:       id,
		Product:  product,
		Messages: append([]Message{}, seed...),
		Open:     true,
	}
	return copyConversation(s.current)
}

// Append adds m to whichever thread is current, open or not.
// Returns the id of that thread, or false if no thread was ever opened.
func (s *Conversations) Append(m Message) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return "", false
	}
	s.current.Messages = append(s.current.Messages, m)
	return s.current.ID, true
}

// Close hides the thread but keeps its messages.
func (s *Conversations) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Open = false
	}
}

func (s *Conversations) Current() (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Conversation{}, false
	}
	return copyConversation(s.current), true
}

func (s *Conversations) Compose() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.compose
}

func (s *Conversations) SetCompose(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compose = text
}

func copyConversation(c *Conversation) Conversation {
	out := *c
	out.Messages = append([]Message{}, c.Messages...)
	return out
}
