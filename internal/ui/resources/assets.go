// Package resources provides static asset handling for the UI server.
package resources

import (
	"fmt"
	"net/http"
	"os"

	"github.com/evanw/esbuild/pkg/api"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}

// Handler returns an HTTP handler for static files mounted at /static/.
// A non-empty dir serves assets from that directory instead of the built-in set,
// which is how a deployment swaps in its own theme.
func Handler(dir string) (http.Handler, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("static directory: %w", err)
		}
		return dirHandler(dir), nil
	}
	return defaultHandler()
}

// dirHandler serves files straight from disk so edits show up on reload.
func dirHandler(dir string) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		fileServer.ServeHTTP(w, r)
	})
}

// MinifyCSS minifies a stylesheet with esbuild.
func MinifyCSS(src []byte) ([]byte, error) {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: true,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		e := result.Errors[0]
		line := 0
		if e.Location != nil {
			line = e.Location.Line
		}
		return nil, fmt.Errorf("minify css: line %d: %s", line, e.Text)
	}
	return result.Code, nil
}
