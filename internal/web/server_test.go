package web

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"tiny-ai/internal/app"
	"tiny-ai/internal/config"
	"tiny-ai/internal/extract"
	"tiny-ai/internal/llm"
	"tiny-ai/internal/logger"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

func newTestDeps(t *testing.T, l llm.Client, ex extract.Extractor) app.Deps {
	t.Helper()
	views, err := view.New()
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	return app.Deps{
		Config: config.Config{
			MaxUploadSize: 1024 * 1024, // 1MB for tests
		},
		Log:       logger.Discard(),
		LLM:       l,
		Extractor: ex,
		Sessions:  session.NewManager(session.NewMemoryStore(0), 0),
		Views:     views,
	}
}

// browser is a test client that keeps the session cookie between requests.
type browser struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newBrowser(t *testing.T, deps app.Deps) *browser {
	t.Helper()
	srv := httptest.NewServer(Routes(deps))
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &browser{t: t, srv: srv, client: &http.Client{Jar: jar}}
}

func (b *browser) get(path string) (int, string) {
	b.t.Helper()
	resp, err := b.client.Get(b.srv.URL + path)
	if err != nil {
		b.t.Fatalf("GET %s: %v", path, err)
	}
	return readResponse(b.t, resp)
}

func (b *browser) post(path string, form url.Values) (int, string) {
	b.t.Helper()
	resp, err := b.client.PostForm(b.srv.URL+path, form)
	if err != nil {
		b.t.Fatalf("POST %s: %v", path, err)
	}
	return readResponse(b.t, resp)
}

func (b *browser) upload(filename, contentType string, content []byte) (int, string) {
	b.t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename)}
	if contentType != "" {
		h["Content-Type"] = []string{contentType}
	}
	part, err := writer.CreatePart(h)
	if err != nil {
		b.t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		b.t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		b.t.Fatalf("close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, b.srv.URL+"/documents/upload", body)
	if err != nil {
		b.t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := b.client.Do(req)
	if err != nil {
		b.t.Fatalf("upload: %v", err)
	}
	return readResponse(b.t, resp)
}

func readResponse(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthAndRedirect(t *testing.T) {
	b := newBrowser(t, newTestDeps(t, new(llm.MockClient), new(extract.MockExtractor)))

	status, body := b.get("/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("unexpected health response %d %q", status, body)
	}

	status, body = b.get("/")
	if status != http.StatusOK {
		t.Fatalf("expected redirect to land on 200, got %d", status)
	}
	if !bytes.Contains([]byte(body), []byte("Chat with AI")) {
		t.Error("expected / to redirect to the Q&A bot")
	}
}
