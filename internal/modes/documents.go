package modes

import (
	"context"

	"tiny-ai/internal/extract"
	"tiny-ai/internal/llm"
	"tiny-ai/internal/session"
)

// PreviewLimit is how many characters of extracted text are displayed.
const PreviewLimit = 2000

// Documents answers questions about one uploaded document.
type Documents struct {
	LLM       llm.Client
	Extractor extract.Extractor
}

// Upload replaces the stored document text with f's text. Document chat history is kept.
// An unsupported type stores empty text and returns the warning in the result.
// An extraction failure leaves st unchanged.
func (d Documents) Upload(ctx context.Context, st session.State, f extract.File) (session.State, extract.Result, error) {
	res, err := d.Extractor.Extract(ctx, f)
	if err != nil {
		return st, extract.Result{}, err
	}
	next := st.Clone()
	next.DocName = f.Name
	next.DocText = res.Text
	return next, res, nil
}

// Ask answers query from the full document text and the running document chat.
// Nothing is called when query is blank or no text has been extracted; asked is false then.
func (d Documents) Ask(ctx context.Context, st session.State, query string) (next session.State, answer string, asked bool, err error) {
	if blank(query) || st.DocText == "" {
		return st, "", false, nil
	}
	prompt := "Answer based on this document:\n" + st.DocText + "\n\nQuestion: " + query
	answer, err = ask(ctx, d.LLM, prompt, st.DocChat)
	if err != nil {
		return st, "", true, err
	}
	next = st.Clone()
	next.DocChat = append(next.DocChat,
		llm.Message{Role: llm.RoleUser, Content: query},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)
	return next, answer, true, nil
}

// Preview returns the first PreviewLimit characters of the stored text.
// Queries always use the full text.
func Preview(st session.State) string {
	return truncateRunes(st.DocText, PreviewLimit)
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
