// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	showcaseFeature "github.com/leapstack-labs/analystdemo/internal/ui/features/showcase"
	"github.com/leapstack-labs/analystdemo/internal/ui/notifier"
	"github.com/leapstack-labs/analystdemo/pkg/core"
	"github.com/starfederation/datastar-go/datastar"
)

// Options carries everything the routes need.
type Options struct {
	Tree         *core.ViewTree
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Static       http.Handler
	Logger       *slog.Logger
	IsDev        bool
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Hot reload endpoint for dev mode
	if opts.IsDev && opts.Notifier != nil {
		setupReload(router, opts.Notifier, logger)
	}

	if opts.Static != nil {
		router.Handle("/static/*", opts.Static)
	}

	return showcaseFeature.SetupRoutes(router, opts.Tree, opts.SessionStore, logger, opts.IsDev)
}

// setupReload wires live reload. Each open page holds a /reload stream; a
// notifier event (asset change or GET /hotreload) makes every page reload.
func setupReload(router chi.Router, notify *notifier.Notifier, logger *slog.Logger) {
	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		events, cancel := notify.Subscribe()
		defer cancel()

		sse := datastar.NewSSE(w, r)
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			logger.Debug("reloading browser", "path", ev.Path)
			_ = sse.ExecuteScript("window.location.reload()")
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast(notifier.Event{})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
