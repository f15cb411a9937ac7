package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role tags a message in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. Order is display order and replay order.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Client is a minimal chat-completion interface to allow pluggable providers.
type Client interface {
	// Ask sends history followed by question as a user turn and returns the first choice.
	// history is never modified.
	Ask(ctx context.Context, question string, history []Message) (string, error)
}

// ErrMissingCredential is returned when no completion credential was configured at startup.
var ErrMissingCredential = errors.New("GROQ_API_KEY not found; add it to your .env file")

// ServiceError wraps any failure of the completion endpoint.
type ServiceError struct {
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("completion service error [%d]: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion service error: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

const summaryInstruction = "Summarize this in 3 sentences:\n"

// Summarize asks for a three sentence summary of text with no history.
// The text is passed through verbatim; long input relies on the endpoint's own limits.
func Summarize(ctx context.Context, c Client, text string) (string, error) {
	return c.Ask(ctx, summaryInstruction+text, nil)
}

// BuildMessages returns history ++ [{user, question}] as a fresh slice.
func BuildMessages(question string, history []Message) []Message {
	msgs := make([]Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	return append(msgs, Message{Role: RoleUser, Content: question})
}
