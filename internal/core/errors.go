package core

import "errors"

// Every operation that returns one of these errors has left state untouched.
var (
	ErrInvalidDraft    = errors.New("invalid product draft")
	ErrSessionRequired = errors.New("authenticated session required")
	ErrInvalidForm     = errors.New("invalid auth form")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrNoConversation  = errors.New("no conversation has been opened")
	ErrProductNotFound = errors.New("product not found")
)
