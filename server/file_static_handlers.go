package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFiles embed.FS

// StylesheetHandler serves the embedded application stylesheet. The route
// carries no session; it answers 404 when the asset is absent.
func (s *Server) StylesheetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(staticFiles, "static/style.css")
		if err != nil {
			http.Error(w, "404 - Page not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write(data)
	}
}
