//go:build dev

package resources

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
)

// getStaticDir derives the absolute path to the static directory
// relative to this source file, regardless of where the binary is run from.
func getStaticDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	// static_dev.go is in internal/ui/resources/, static/ is a sibling directory
	return filepath.Join(filepath.Dir(filename), "static")
}

// defaultHandler serves assets from the source tree, unminified, for hot reloading.
func defaultHandler() (http.Handler, error) {
	staticDir := getStaticDir()
	slog.Info("static assets served from filesystem", "path", staticDir)
	return dirHandler(staticDir), nil
}

// SourceDir returns the on-disk static directory for file watching.
func SourceDir() string {
	return getStaticDir()
}
