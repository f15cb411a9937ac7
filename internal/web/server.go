// Package web serves the four modes over HTTP.
package web

import (
	"errors"
	"net/http"

	"tiny-ai/internal/app"
	"tiny-ai/internal/extract"
	"tiny-ai/internal/httputil"
	"tiny-ai/internal/llm"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

// Routes builds the router for every mode.
func Routes(deps app.Deps) http.Handler {
	r := httputil.NewRouter(deps.Log)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/qa", http.StatusSeeOther)
	})

	r.Get("/qa", qaPage(deps))
	r.Post("/qa", qaSubmit(deps))

	r.Get("/summarize", summarizePage(deps))
	r.Post("/summarize", summarizeSubmit(deps))

	r.Get("/expenses", expensesPage(deps))
	r.Post("/expenses", expensesAdd(deps))
	r.Get("/expenses/chart", expensesChart(deps))
	r.Get("/expenses/summary.json", expensesSummary(deps))

	r.Get("/documents", documentsPage(deps))
	r.Post("/documents/upload", documentsUpload(deps))
	r.Post("/documents/ask", documentsAsk(deps))

	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r
}

// withSession loads the caller's session, runs fn, and saves whatever state fn returns.
func withSession(deps app.Deps, fn func(w http.ResponseWriter, r *http.Request, st session.State) session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, st, err := deps.Sessions.Load(w, r)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to load session", err, http.StatusInternalServerError)
			return
		}
		next := fn(w, r, st)
		if err := deps.Sessions.Save(r.Context(), id, next); err != nil {
			deps.Log.Error("failed to save session", "err", err, "session_id", id)
		}
	}
}

func render(deps app.Deps, w http.ResponseWriter, status int, p view.Page) {
	if deps.ConfigErr != nil {
		p.ConfigError = deps.ConfigErr.Error()
	}
	if err := deps.Views.Render(w, status, p); err != nil {
		deps.Log.Error("render failed", "err", err, "mode", p.Mode)
	}
}

// failure maps a collaborator error to a status and a banner the user can tell apart.
// The flash is nil for a missing credential: the configuration banner already covers it.
func failure(deps app.Deps, err error) (int, *view.Flash) {
	var (
		svcErr *llm.ServiceError
		extErr *extract.ExtractionError
	)
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return http.StatusServiceUnavailable, nil
	case errors.As(err, &svcErr):
		deps.Log.Error("completion service failed", "err", err, "status", svcErr.StatusCode)
		return http.StatusBadGateway, &view.Flash{Kind: view.FlashError, Text: "The completion service failed: " + svcErr.Error()}
	case errors.As(err, &extErr):
		deps.Log.Error("extraction failed", "err", err, "filename", extErr.Name, "kind", extErr.Kind.String())
		return http.StatusUnprocessableEntity, &view.Flash{Kind: view.FlashError, Text: "Could not read the uploaded file: " + extErr.Error()}
	default:
		deps.Log.Error("request failed", "err", err)
		return http.StatusInternalServerError, &view.Flash{Kind: view.FlashError, Text: "Something went wrong."}
	}
}
