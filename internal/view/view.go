// Package view renders the browser UI.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"tiny-ai/internal/expense"
	"tiny-ai/internal/llm"
	"tiny-ai/internal/modes"
)

//go:embed templates/*.html
var templateFS embed.FS

// FlashKind selects the banner style.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot banner shown above the mode content.
type Flash struct {
	Kind FlashKind
	Text string
}

// Page is the data every template receives. Mode-specific fields are empty elsewhere.
type Page struct {
	Mode        modes.Mode
	ConfigError string
	Flash       *Flash

	// Q&A Bot
	Chat []llm.Message

	// Summarizer
	Text    string
	Summary string

	// Expense Tracker
	Category string
	Totals   []expense.CategoryTotal

	// Document Q&A
	DocName string
	Preview string
	Query   string
	DocChat []llm.Message
	Answer  string
}

// Modes returns the sidebar entries.
func (p Page) Modes() []modes.Mode { return modes.All }

// AIDisabled reports whether the page's forms must be disabled.
func (p Page) AIDisabled() bool { return p.ConfigError != "" && p.Mode.NeedsLLM() }

// Renderer executes one template set per mode.
type Renderer struct {
	pages map[modes.Mode]*template.Template
	md    goldmark.Markdown
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[modes.Mode]*template.Template, len(modes.All)),
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	funcs := template.FuncMap{
		"markdown": r.markdown,
		"amount":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"share": func(t expense.CategoryTotal, all []expense.CategoryTotal) string {
			return fmt.Sprintf("%.1f%%", expense.Share(t, expense.Sum(all)))
		},
	}
	for _, m := range modes.All {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+string(m)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", m, err)
		}
		r.pages[m] = tmpl
	}
	return r, nil
}

// Render writes p's mode page with status.
func (r *Renderer) Render(w http.ResponseWriter, status int, p Page) error {
	tmpl, ok := r.pages[p.Mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", p.Mode)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// markdown converts s to HTML. Raw HTML in s is not passed through.
func (r *Renderer) markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}
