package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"tiny-ai/internal/logger"
)

func TestExtractText(t *testing.T) {
	svc := NewService(nil, logger.Discard())
	content := "line one\nline two\n\tüñíçødé\n"

	res, err := svc.Extract(context.Background(), File{Name: "notes.txt", DeclaredType: "text/plain", Data: []byte(content)})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != content {
		t.Errorf("expected exact contents %q, got %q", content, res.Text)
	}
	if res.Warning != "" {
		t.Errorf("unexpected warning %q", res.Warning)
	}
	if res.Kind != KindText {
		t.Errorf("expected KindText, got %v", res.Kind)
	}
}

func TestExtractUnsupportedWarns(t *testing.T) {
	svc := NewService(nil, logger.Discard())

	res, err := svc.Extract(context.Background(), File{Name: "a.bin", DeclaredType: "application/zip", Data: []byte("PK")})
	if err != nil {
		t.Fatalf("unsupported type must not be an error, got %v", err)
	}
	if res.Text != "" {
		t.Errorf("expected empty text, got %q", res.Text)
	}
	if res.Warning != UnsupportedWarning {
		t.Errorf("expected warning %q, got %q", UnsupportedWarning, res.Warning)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	svc := NewService(nil, logger.Discard())

	_, err := svc.Extract(context.Background(), File{Name: "broken.pdf", DeclaredType: "application/pdf", Data: []byte("not a pdf at all")})
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Kind != KindPDF || extErr.Name != "broken.pdf" {
		t.Errorf("unexpected error details %+v", extErr)
	}
}

func TestExtractPDF(t *testing.T) {
	svc := NewService(nil, logger.Discard())

	res, err := svc.Extract(context.Background(), File{Name: "hello.pdf", DeclaredType: "application/pdf", Data: minimalPDF("Hello")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(res.Text, "Hello") {
		t.Errorf("expected page text, got %q", res.Text)
	}
}

func TestExtractImage(t *testing.T) {
	data := testPNG(t)

	tests := []struct {
		name     string
		data     []byte
		setup    func(*MockOCR)
		wantText string
		wantErr  bool
	}{
		{
			name: "recognized text",
			data: data,
			setup: func(o *MockOCR) {
				o.On("Recognize", mock.Anything, data).Return("RECEIPT TOTAL 12.50", nil).Once()
			},
			wantText: "RECEIPT TOTAL 12.50",
		},
		{
			name:    "corrupt image never reaches OCR",
			data:    []byte("\x89PNG garbage"),
			wantErr: true,
		},
		{
			name: "OCR failure",
			data: data,
			setup: func(o *MockOCR) {
				o.On("Recognize", mock.Anything, data).Return("", errors.New("tesseract failed")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ocr := new(MockOCR)
			if tt.setup != nil {
				tt.setup(ocr)
			}
			svc := NewService(ocr, logger.Discard())

			res, err := svc.Extract(context.Background(), File{Name: "scan.png", DeclaredType: "image/png", Data: tt.data})
			if tt.wantErr {
				var extErr *ExtractionError
				if !errors.As(err, &extErr) {
					t.Fatalf("expected ExtractionError, got %v", err)
				}
			} else {
				if err != nil {
					t.Fatalf("Extract: %v", err)
				}
				if res.Text != tt.wantText {
					t.Errorf("got %q, want %q", res.Text, tt.wantText)
				}
			}
			ocr.AssertExpectations(t)
		})
	}
}

func TestExtractImageWithoutOCR(t *testing.T) {
	svc := NewService(nil, logger.Discard())

	_, err := svc.Extract(context.Background(), File{Name: "scan.png", DeclaredType: "image/png", Data: testPNG(t)})
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// minimalPDF builds a one page PDF with a correct xref table.
func minimalPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 24 Tf 72 712 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
