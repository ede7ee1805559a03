package resources

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPath(t *testing.T) {
	assert.Equal(t, "/static/css/app.css", StaticPath("css/app.css"))
}

func TestMinifyCSS(t *testing.T) {
	out, err := MinifyCSS([]byte("body {\n  color: #ffffff;\n  margin: 0px;\n}\n"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\n  ")
	assert.Contains(t, string(out), "body{")
}

func TestHandler_Default(t *testing.T) {
	h, err := Handler("")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".ui-tab")
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
}

func TestHandler_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte(".custom{}"), 0600))

	h, err := Handler(dir)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".custom{}", rec.Body.String())
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestHandler_MissingDirectory(t *testing.T) {
	_, err := Handler(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
