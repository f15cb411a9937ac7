// Package modes holds the four mode controllers. Each takes the current session
// state plus one user action and returns the updated state; none keeps state of its own.
package modes

import (
	"context"
	"strings"

	"tiny-ai/internal/llm"
)

// Mode identifies one of the mutually exclusive views.
type Mode string

const (
	ModeQA        Mode = "qa"
	ModeSummarize Mode = "summarize"
	ModeExpenses  Mode = "expenses"
	ModeDocuments Mode = "documents"
)

// All lists the modes in sidebar order.
var All = []Mode{ModeQA, ModeSummarize, ModeExpenses, ModeDocuments}

// Title is the sidebar label of m.
func (m Mode) Title() string {
	switch m {
	case ModeQA:
		return "Q&A Bot"
	case ModeSummarize:
		return "Summarizer"
	case ModeExpenses:
		return "Expense Tracker"
	case ModeDocuments:
		return "Document Q&A"
	default:
		return string(m)
	}
}

// NeedsLLM reports whether m calls the completion endpoint.
func (m Mode) NeedsLLM() bool {
	return m != ModeExpenses
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ask fails fast when no client was configured.
func ask(ctx context.Context, c llm.Client, question string, history []llm.Message) (string, error) {
	if c == nil {
		return "", llm.ErrMissingCredential
	}
	return c.Ask(ctx, question, history)
}
