package core

import (
	"fmt"
	"log/slog"

	"gwi.com/neon-marketplace/internal/store"
)

type SessionService struct {
	session  *store.Session
	provider IdentityProvider
	log      *slog.Logger
}

func NewSessionService(session *store.Session, provider IdentityProvider, log *slog.Logger) *SessionService {
	return &SessionService{session: session, provider: provider, log: log}
}

// Register requires name, email, phone and password. On failure the session
// stays as it was.
func (s *SessionService) Register(form store.AuthForm) (store.User, error) {
	if err := validateRegister(form); err != nil {
		return store.User{}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	user, err := s.provider.Register(form)
	if err != nil {
		return store.User{}, fmt.Errorf("failed to register: %w", err)
	}
	s.session.SignIn(user)
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login requires email and password. The password is never verified.
func (s *SessionService) Login(form store.AuthForm) (store.User, error) {
	if err := validateLogin(form); err != nil {
		return store.User{}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	user, err := s.provider.Login(form)
	if err != nil {
		return store.User{}, fmt.Errorf("failed to log in: %w", err)
	}
	s.session.SignIn(user)
	s.log.Info("user logged in", "user_id", user.ID)
	return user, nil
}

func (s *SessionService) Logout() {
	if u := s.session.Current(); u != nil {
		s.log.Info("user logged out", "user_id", u.ID)
	}
	s.session.SignOut()
}

func (s *SessionService) Current() *store.User { return s.session.Current() }

func (s *SessionService) State() store.SessionState { return s.session.State() }

func (s *SessionService) UpdateForm(f store.AuthForm) { s.session.SetForm(f) }

func (s *SessionService) Form() store.AuthForm { return s.session.Form() }
