package store

import "sync"

type SessionState string

const (
	Anonymous     SessionState = "ANONYMOUS"
	Authenticated SessionState = "AUTHENTICATED"
)

// Session holds the auth form and at most one current user.
type Session struct {
	mu   sync.RWMutex
	user *User
	form AuthForm
}

func NewSession() *Session {
	return &Session{}
}

// SignIn makes u the current user and clears the form.
func (s *Session) SignIn(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.form = AuthForm{}
}

func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current returns a copy of the current user, or nil when anonymous.
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return Anonymous
	}
	return Authenticated
}

func (s *Session) Form() AuthForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

func (s *Session) SetForm(f AuthForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}
