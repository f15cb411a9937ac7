package extract

import (
	"mime"
	"path/filepath"
	"strings"
)

// Kind is the extraction path chosen for an upload. It is resolved once, at upload time.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindText
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

// AllowedExtensions is the uploader allow-list.
var AllowedExtensions = []string{".pdf", ".txt", ".png", ".jpg", ".jpeg"}

// extensionTypes fills in a declared type when the client sent none.
var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Allowed reports whether filename carries one of AllowedExtensions.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// DeclaredType returns contentType, or the type implied by the file name when contentType is empty.
func DeclaredType(contentType, filename string) string {
	if contentType != "" {
		return contentType
	}
	return extensionTypes[strings.ToLower(filepath.Ext(filename))]
}

// Resolve maps a declared MIME type to a Kind. Bytes are never inspected.
func Resolve(declaredType string) Kind {
	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(declaredType))
	}
	switch {
	case mediaType == "application/pdf":
		return KindPDF
	case strings.HasPrefix(mediaType, "text/"):
		return KindText
	case strings.HasPrefix(mediaType, "image/"):
		return KindImage
	default:
		return KindUnsupported
	}
}
