// Package showcase serves the demo page and its per-section updates.
package showcase

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/analystdemo/pkg/core"
)

// SetupRoutes configures routes for the showcase feature.
func SetupRoutes(
	router chi.Router,
	tree *core.ViewTree,
	sessionStore sessions.Store,
	logger *slog.Logger,
	isDev bool,
) error {
	if err := tree.Validate(); err != nil {
		return err
	}

	handlers := NewHandlers(tree, sessionStore, logger, isDev)

	router.Get("/", handlers.HomePage)
	router.Get("/sections/{slug}", handlers.SectionUpdate)
	router.Get("/healthz", handlers.Healthz)

	return nil
}
