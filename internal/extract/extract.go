package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UnsupportedWarning is shown when an upload's declared type has no extraction path.
const UnsupportedWarning = "Unsupported file type."

// File is an upload read fully into memory.
type File struct {
	Name         string
	DeclaredType string
	Data         []byte
}

// Result is the text extracted from a File. Warning is set for unsupported types.
type Result struct {
	Kind    Kind
	Text    string
	Warning string
}

// ExtractionError reports an upload that could not be read on its extraction path.
type ExtractionError struct {
	Name string
	Kind Kind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s from %q: %v", e.Kind, e.Name, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor turns an uploaded file into text.
type Extractor interface {
	Extract(ctx context.Context, f File) (Result, error)
}

// OCR recognizes text in an encoded image.
type OCR interface {
	Recognize(ctx context.Context, img []byte) (string, error)
}

// Service dispatches on the declared type of a file.
type Service struct {
	ocr OCR
	log *slog.Logger
}

// NewService builds an extractor. ocr may be nil, in which case images fail to extract.
func NewService(ocr OCR, log *slog.Logger) *Service {
	return &Service{ocr: ocr, log: log}
}

func (s *Service) Extract(ctx context.Context, f File) (Result, error) {
	kind := Resolve(f.DeclaredType)
	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = extractPDF(f.Data)
	case KindText:
		text = string(f.Data)
	case KindImage:
		text, err = s.extractImage(ctx, f.Data)
	default:
		s.log.Warn("unsupported file type", "filename", f.Name, "content_type", f.DeclaredType)
		return Result{Kind: kind, Warning: UnsupportedWarning}, nil
	}
	if err != nil {
		return Result{}, &ExtractionError{Name: f.Name, Kind: kind, Err: err}
	}
	s.log.Debug("extracted text", "filename", f.Name, "kind", kind.String(), "chars", len(text))
	return Result{Kind: kind, Text: text}, nil
}

// extractPDF joins the plain text of every page with newlines. Page errors are not skipped.
func extractPDF(content []byte) (text string, err error) {
	// The pdf package panics on some malformed object graphs.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}
		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("page %d: %w", pageNum, perr)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func (s *Service) extractImage(ctx context.Context, data []byte) (string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if s.ocr == nil {
		return "", fmt.Errorf("no OCR engine configured")
	}
	return s.ocr.Recognize(ctx, data)
}
