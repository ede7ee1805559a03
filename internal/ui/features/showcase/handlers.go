package showcase

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/analystdemo/internal/ui/components"
	"github.com/leapstack-labs/analystdemo/pkg/core"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// SessionName is the cookie holding per-visitor UI state.
	SessionName = "analystdemo"
	// activeTabKey stores the slug of the last selected section.
	activeTabKey = "active_tab"
)

// Handlers provides HTTP handlers for the showcase feature.
type Handlers struct {
	tree         *core.ViewTree
	sessionStore sessions.Store
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tree *core.ViewTree, sessionStore sessions.Store, logger *slog.Logger, isDev bool) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		tree:         tree,
		sessionStore: sessionStore,
		logger:       logger,
		isDev:        isDev,
	}
}

// HomePage renders the full page, opening the tab the visitor last selected.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	page := components.PageData{
		Tree:   h.tree,
		Active: h.activeTab(r),
		IsDev:  h.isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Page(page).Render(r.Context(), w); err != nil {
		h.logger.Error("render page failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SectionUpdate records the selected tab and patches that section's panel.
// Tab switching itself happens client-side; this keeps the choice across reloads.
func (h *Handlers) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	section, ok := h.tree.Section(slug)
	if !ok {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(fmt.Errorf("unknown section %q", slug))
		return
	}

	// The cookie must be set before the SSE stream flushes headers.
	if err := h.saveActiveTab(w, r, slug); err != nil {
		h.logger.Warn("save session failed", "error", err)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(components.SectionPanel(section, true)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// Healthz reports liveness for hosting platforms.
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// activeTab returns the slug stored in the visitor session, or "" if none.
func (h *Handlers) activeTab(r *http.Request) string {
	if h.sessionStore == nil {
		return ""
	}
	// A tampered or stale cookie yields a fresh session plus an error; the
	// fresh session is what we want.
	session, _ := h.sessionStore.Get(r, SessionName)
	if session == nil {
		return ""
	}
	slug, _ := session.Values[activeTabKey].(string)
	return slug
}

func (h *Handlers) saveActiveTab(w http.ResponseWriter, r *http.Request, slug string) error {
	if h.sessionStore == nil {
		return nil
	}
	session, _ := h.sessionStore.Get(r, SessionName)
	if session == nil {
		return fmt.Errorf("no session available")
	}
	session.Values[activeTabKey] = slug
	return session.Save(r, w)
}
