package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tradescan/tradescan/pkg/config"
)

func newTestServer() *Server {
	cfg := &config.Config{ListenAddr: "127.0.0.1:0", ShapeMode: "first-match", LogLevel: "error"}
	return New(cfg, log.Default())
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestImportCSV(t *testing.T) {
	s := newTestServer()
	content := "Symbol,Type,Amount,Profit\nAAPL,call,1500,85\nTSLA,put,0,10"

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "history.csv", content))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		File   string `json:"file"`
		Count  int    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" || resp.Count != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.File != "history-trades.csv" {
		t.Errorf("unexpected export name %q", resp.File)
	}
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "history.docx", "whatever"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported extension, got %d", rec.Code)
	}
}

func TestImportRejectsMissingFile(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/import", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", rec.Code)
	}
}

func TestFilesDownloadRoundTrip(t *testing.T) {
	s := newTestServer()
	content := "Symbol,Type,Amount,Profit\nAAPL,call,1500,85"

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "history.csv", content))
	if rec.Code != http.StatusOK {
		t.Fatalf("import failed: %d", rec.Code)
	}

	dl := httptest.NewRecorder()
	s.Handler().ServeHTTP(dl, httptest.NewRequest(http.MethodGet, "/api/files/history-trades.csv", nil))
	if dl.Code != http.StatusOK {
		t.Fatalf("expected 200 for download, got %d", dl.Code)
	}
	if ct := dl.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !bytes.Contains(dl.Body.Bytes(), []byte("AAPL")) {
		t.Error("exported csv missing trade row")
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
