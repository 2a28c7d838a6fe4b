// Package web serves the embedded game pages and their assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

//go:embed assets/*
var assets embed.FS

// Page returns a handler writing one of the embedded HTML pages
func Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := assets.ReadFile(path.Join("assets", name))
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Str("page", name).Msg("embedded page missing")
			http.Error(w, "Page not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Write(data)
	}
}

// Assets serves the embedded css and js under /assets/
func Assets() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	files := http.StripPrefix("/assets/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		files.ServeHTTP(w, r)
	})
}
