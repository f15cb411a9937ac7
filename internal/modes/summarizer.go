package modes

import (
	"context"

	"tiny-ai/internal/llm"
)

// Summarizer summarizes pasted text. It keeps no history.
type Summarizer struct {
	LLM llm.Client
}

// Run returns the summary of text, or "" without calling the endpoint when text is blank.
func (s Summarizer) Run(ctx context.Context, text string) (string, error) {
	if blank(text) {
		return "", nil
	}
	if s.LLM == nil {
		return "", llm.ErrMissingCredential
	}
	return llm.Summarize(ctx, s.LLM, text)
}
