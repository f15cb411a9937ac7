package web

import (
	"net/http"

	"tiny-ai/internal/app"
	"tiny-ai/internal/modes"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

func qaPage(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		render(deps, w, http.StatusOK, view.Page{Mode: modes.ModeQA, Chat: st.Chat})
		return st
	})
}

func qaSubmit(deps app.Deps) http.HandlerFunc {
	qa := modes.QA{LLM: deps.LLM}
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		next, err := qa.Submit(r.Context(), st, r.FormValue("question"))
		if err != nil {
			status, flash := failure(deps, err)
			render(deps, w, status, view.Page{Mode: modes.ModeQA, Chat: st.Chat, Flash: flash})
			return st
		}
		render(deps, w, http.StatusOK, view.Page{Mode: modes.ModeQA, Chat: next.Chat})
		return next
	})
}

func summarizePage(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		render(deps, w, http.StatusOK, view.Page{Mode: modes.ModeSummarize})
		return st
	})
}

func summarizeSubmit(deps app.Deps) http.HandlerFunc {
	summarizer := modes.Summarizer{LLM: deps.LLM}
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		text := r.FormValue("text")
		page := view.Page{Mode: modes.ModeSummarize, Text: text}

		summary, err := summarizer.Run(r.Context(), text)
		if err != nil {
			status, flash := failure(deps, err)
			page.Flash = flash
			render(deps, w, status, page)
			return st
		}
		page.Summary = summary
		render(deps, w, http.StatusOK, page)
		return st
	})
}
