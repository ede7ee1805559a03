//go:build !dev

package resources

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed static/*
var staticFS embed.FS

// startTime stands in for file modification times, which embed.FS lacks.
var startTime = time.Now()

// defaultHandler serves the embedded assets. Stylesheets are minified once
// up front; everything else is served as embedded.
func defaultHandler() (http.Handler, error) {
	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	minified := make(map[string][]byte)
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".css" {
			return err
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		out, err := MinifyCSS(src)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		minified[p] = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(fsys)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Cache embedded static assets for 1 year (they never change in prod)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		name := strings.TrimPrefix(r.URL.Path, "/static/")
		if css, ok := minified[name]; ok {
			http.ServeContent(w, r, name, startTime, bytes.NewReader(css))
			return
		}
		fileServer.ServeHTTP(w, r)
	}), nil
}

// SourceDir returns the on-disk static directory for file watching.
// Embedded assets have none.
func SourceDir() string {
	return ""
}
