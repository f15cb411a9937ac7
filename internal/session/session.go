package session

import (
	"context"
	"errors"
	"slices"

	"tiny-ai/internal/expense"
	"tiny-ai/internal/llm"
)

// ErrNotFound is returned by Store.Load for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// State is everything one browser session holds. It is empty at session start.
type State struct {
	Chat     []llm.Message   `json:"chat,omitempty"`
	Expenses []expense.Entry `json:"expenses,omitempty"`
	DocName  string          `json:"doc_name,omitempty"`
	DocText  string          `json:"doc_text,omitempty"`
	DocChat  []llm.Message   `json:"doc_chat,omitempty"`
}

// Clone returns a copy whose slices do not share memory with s.
func (s State) Clone() State {
	s.Chat = slices.Clone(s.Chat)
	s.Expenses = slices.Clone(s.Expenses)
	s.DocChat = slices.Clone(s.DocChat)
	return s
}

// Store keeps session state for the lifetime of a session.
type Store interface {
	// Load returns ErrNotFound when id has no state.
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, st State) error
	Delete(ctx context.Context, id string) error
	Close() error
}
