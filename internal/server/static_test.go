package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestStaticAssets_Has(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "frontend")
	writeFile(t, filepath.Join(dir, "index.html"), "<h1>hi</h1>")
	writeFile(t, filepath.Join(dir, "css", "site.css"), "body{}")
	writeFile(t, filepath.Join(base, "secret.txt"), "nope")

	assets := NewStaticAssets(dir, discardLogger())

	tests := []struct {
		name string
		want bool
	}{
		{"index.html", true},
		{"/index.html", true},
		{"css/site.css", true},
		{"css", false},
		{"missing.js", false},
		{"", false},
		{"../secret.txt", false},
		{"css/../../secret.txt", false},
	}

	for _, tt := range tests {
		if got := assets.Has(tt.name); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStaticAssets_MissingDirectory(t *testing.T) {
	assets := NewStaticAssets(filepath.Join(t.TempDir(), "absent"), discardLogger())

	if assets.Has("index.html") {
		t.Error("Has() should be false when the directory does not exist")
	}

	rr := httptest.NewRecorder()
	assets.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestStaticAssets_ServeHTTP(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.js"), "console.log(1)")

	assets := NewStaticAssets(dir, discardLogger())

	rr := httptest.NewRecorder()
	assets.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if rr.Body.String() != "console.log(1)" {
		t.Errorf("body = %q, want console.log(1)", rr.Body.String())
	}
}
