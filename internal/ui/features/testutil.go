// Package features provides shared test utilities for UI feature tests.
package features

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"

	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/internal/testutil"
	"github.com/leapstack-labs/analystdemo/pkg/core"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Tree         *core.ViewTree
	SessionStore *sessions.CookieStore
	Logger       *slog.Logger
}

// SetupTestFixture creates a fixture around the compiled-in demo view.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()
	return SetupTestFixtureWithTree(t, content.BuildView())
}

// SetupTestFixtureWithTree creates a fixture around a custom view.
func SetupTestFixtureWithTree(t *testing.T, tree *core.ViewTree) *TestFixture {
	t.Helper()

	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
	store.Options.Path = "/"

	return &TestFixture{
		Tree:         tree,
		SessionStore: store,
		Logger:       testutil.NewTestLogger(t),
	}
}

// Get sends a GET request through h, replaying the given cookies.
func Get(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
