package web

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"tiny-ai/internal/app"
	"tiny-ai/internal/extract"
	"tiny-ai/internal/modes"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

// multipartOverhead is slack for form boundaries and headers on top of the file size limit.
const multipartOverhead = 1 << 20

func documentsView(st session.State) view.Page {
	return view.Page{
		Mode:    modes.ModeDocuments,
		DocName: st.DocName,
		Preview: modes.Preview(st),
		DocChat: st.DocChat,
	}
}

func documentsPage(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		render(deps, w, http.StatusOK, documentsView(st))
		return st
	})
}

func documentsUpload(deps app.Deps) http.HandlerFunc {
	docs := modes.Documents{LLM: deps.LLM, Extractor: deps.Extractor}
	maxFileSize := deps.Config.MaxUploadSize

	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		badRequest := func(msg string, err error) session.State {
			deps.Log.Warn("rejected upload", "reason", msg, "err", err)
			page := documentsView(st)
			page.Flash = &view.Flash{Kind: view.FlashError, Text: msg}
			render(deps, w, http.StatusBadRequest, page)
			return st
		}

		if deps.LLM == nil {
			render(deps, w, http.StatusServiceUnavailable, documentsView(st))
			return st
		}
		if r.ContentLength > maxFileSize+multipartOverhead {
			return badRequest(fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil)
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

		file, header, err := r.FormFile("file")
		if err != nil {
			return badRequest("file is required", err)
		}
		defer file.Close()

		if header.Size > maxFileSize {
			return badRequest(fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil)
		}
		if !extract.Allowed(header.Filename) {
			return badRequest("unsupported file type (allowed: "+strings.Join(extract.AllowedExtensions, ", ")+")", nil)
		}

		data, err := io.ReadAll(file)
		if err != nil {
			return badRequest("failed to read file", err)
		}

		next, res, err := docs.Upload(r.Context(), st, extract.File{
			Name:         header.Filename,
			DeclaredType: extract.DeclaredType(header.Header.Get("Content-Type"), header.Filename),
			Data:         data,
		})
		if err != nil {
			status, flash := failure(deps, err)
			page := documentsView(st)
			page.Flash = flash
			render(deps, w, status, page)
			return st
		}

		page := documentsView(next)
		if res.Warning != "" {
			page.Flash = &view.Flash{Kind: view.FlashWarning, Text: res.Warning}
		}
		render(deps, w, http.StatusOK, page)
		return next
	})
}

func documentsAsk(deps app.Deps) http.HandlerFunc {
	docs := modes.Documents{LLM: deps.LLM, Extractor: deps.Extractor}

	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		query := r.FormValue("query")

		next, answer, _, err := docs.Ask(r.Context(), st, query)
		if err != nil {
			status, flash := failure(deps, err)
			page := documentsView(st)
			page.Query = query
			page.Flash = flash
			render(deps, w, status, page)
			return st
		}

		page := documentsView(next)
		page.Query = query
		page.Answer = answer
		render(deps, w, http.StatusOK, page)
		return next
	})
}
