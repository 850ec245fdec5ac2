package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"Cinelog/config"

	"github.com/go-chi/chi/v5"
)

var uploadKinds = map[string]bool{
	"posters": true,
	"avatars": true,
}

// ServeUploadHandler serves stored poster and avatar images off disk.
// URL: /uploads/{kind}/{file}
func ServeUploadHandler(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if !uploadKinds[kind] {
		http.NotFound(w, r)
		return
	}

	// Strip any path components from the requested name
	file := filepath.Base(chi.URLParam(r, "file"))
	if file == "." || file == "/" {
		http.NotFound(w, r)
		return
	}

	cfg := config.Load()
	localPath := filepath.Join(cfg.UploadsPath, kind, file)
	if _, err := os.Stat(localPath); err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, localPath)
}
