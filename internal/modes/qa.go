package modes

import (
	"context"

	"tiny-ai/internal/llm"
	"tiny-ai/internal/session"
)

// QA is the follow-up capable chat bot.
type QA struct {
	LLM llm.Client
}

// Submit sends input with the running chat history and appends both turns.
// Blank input is ignored. On error st is returned unchanged.
func (q QA) Submit(ctx context.Context, st session.State, input string) (session.State, error) {
	if blank(input) {
		return st, nil
	}
	answer, err := ask(ctx, q.LLM, input, st.Chat)
	if err != nil {
		return st, err
	}
	next := st.Clone()
	next.Chat = append(next.Chat,
		llm.Message{Role: llm.RoleUser, Content: input},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)
	return next, nil
}
