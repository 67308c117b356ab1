package core

import "gwi.com/neon-marketplace/internal/store"

//go:generate mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks

// IdentityProvider turns a submitted auth form into a user. Implementations
// receive forms that already passed presence validation.
type IdentityProvider interface {
	Register(form store.AuthForm) (store.User, error)
	Login(form store.AuthForm) (store.User, error)
}

// Demo account returned by every login.
const (
	DemoUserID    int64 = 1
	DemoUserName        = "Демо Пользователь"
	DemoUserPhone       = "+7 999 123-45-67"
)

// MockIdentityProvider is a stub. It never stores or checks a password:
// Register fabricates a user from the form and Login always answers with
// the demo account carrying the submitted email.
type MockIdentityProvider struct {
	ids *store.Sequence
}

func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{ids: store.NewSequence(DemoUserID)}
}

func (p *MockIdentityProvider) Register(form store.AuthForm) (store.User, error) {
	return store.User{
		ID:    p.ids.Next(),
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	}, nil
}

func (p *MockIdentityProvider) Login(form store.AuthForm) (store.User, error) {
	return store.User{
		ID:    DemoUserID,
		Name:  DemoUserName,
		Email: form.Email,
		Phone: DemoUserPhone,
	}, nil
}
