package modes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"tiny-ai/internal/llm"
)

func TestSummarizerRun(t *testing.T) {
	client := new(llm.MockClient)
	client.On("Ask", mock.Anything, "Summarize this in 3 sentences:\n  An article.  ", []llm.Message(nil)).
		Return("A summary.", nil).Once()

	got, err := Summarizer{LLM: client}.Run(context.Background(), "  An article.  ")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "A summary." {
		t.Errorf("unexpected summary %q", got)
	}
	client.AssertExpectations(t)
}

func TestSummarizerBlankMakesNoCall(t *testing.T) {
	client := new(llm.MockClient)

	got, err := Summarizer{LLM: client}.Run(context.Background(), " \n\t")
	if err != nil || got != "" {
		t.Fatalf("expected no-op, got %q, %v", got, err)
	}
	client.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarizerMissingCredential(t *testing.T) {
	_, err := Summarizer{}.Run(context.Background(), "text")
	if !errors.Is(err, llm.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}
