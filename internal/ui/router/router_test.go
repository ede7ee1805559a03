package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/analystdemo/internal/ui/features"
	"github.com/leapstack-labs/analystdemo/internal/ui/notifier"
	"github.com/leapstack-labs/analystdemo/internal/ui/resources"
)

func setupRouter(t *testing.T, isDev bool) (chi.Router, *notifier.Notifier) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	static, err := resources.Handler("")
	require.NoError(t, err)

	n := notifier.New()
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, Options{
		Tree:         fixture.Tree,
		SessionStore: fixture.SessionStore,
		Notifier:     n,
		Static:       static,
		Logger:       fixture.Logger,
		IsDev:        isDev,
	}))
	return r, n
}

func TestSetupRoutes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		isDev      bool
		wantStatus int
	}{
		{"home page", "/", false, http.StatusOK},
		{"section update", "/sections/about", false, http.StatusOK},
		{"health", "/healthz", false, http.StatusOK},
		{"stylesheet", "/static/css/app.css", false, http.StatusOK},
		{"missing asset", "/static/nope.css", false, http.StatusNotFound},
		{"hotreload hidden in prod", "/hotreload", false, http.StatusNotFound},
		{"hotreload in dev", "/hotreload", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(t, tt.isDev)
			rec := features.Get(r, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReload_BroadcastTriggersReload(t *testing.T) {
	r, n := setupRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/reload", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 500*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return n.Len() == 1 }, 200*time.Millisecond, 5*time.Millisecond)
	features.Get(r, "/hotreload")
	<-done

	assert.Contains(t, rec.Body.String(), "window.location.reload()")
	assert.Equal(t, 0, n.Len(), "listener is released after reload")
}

func TestReload_ClientDisconnect(t *testing.T) {
	r, n := setupRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/reload", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(ctx))

	assert.False(t, strings.Contains(rec.Body.String(), "reload()"))
	assert.Equal(t, 0, n.Len())
}
