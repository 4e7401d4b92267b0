package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// StaticAssets serves the frontend directory. A missing directory is not an
// error: every lookup simply misses.
type StaticAssets struct {
	root    fs.FS
	handler http.Handler
}

// NewStaticAssets serves files under dir.
func NewStaticAssets(dir string, logger *slog.Logger) *StaticAssets {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("static directory not found, frontend disabled", "dir", dir)
	}

	root := os.DirFS(dir)
	return &StaticAssets{
		root:    root,
		handler: http.FileServerFS(root),
	}
}

// Has reports whether name is a regular file inside the directory. Names that
// could escape the directory never match.
func (a *StaticAssets) Has(name string) bool {
	name = strings.TrimPrefix(name, "/")
	if name == "" || !fs.ValidPath(name) {
		return false
	}

	info, err := fs.Stat(a.root, name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (a *StaticAssets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
