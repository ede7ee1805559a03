// Package markdown renders the demo's Markdown prose to HTML.
package markdown

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts GitHub-flavoured Markdown to HTML.
// Raw HTML in the source is dropped, not passed through.
// Output is memoised per source string; the prose is static.
type Renderer struct {
	md    goldmark.Markdown
	mu    sync.RWMutex
	cache map[string]string
}

// New creates a Renderer with tables, strikethrough, autolinks and task lists.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		cache: make(map[string]string),
	}
}

// Render returns the HTML for src.
func (r *Renderer) Render(src string) (string, error) {
	r.mu.RLock()
	out, ok := r.cache[src]
	r.mu.RUnlock()
	if ok {
		return out, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out = buf.String()

	r.mu.Lock()
	r.cache[src] = out
	r.mu.Unlock()
	return out, nil
}

var defaultRenderer = New()

// Render converts src with the package-level renderer.
func Render(src string) (string, error) {
	return defaultRenderer.Render(src)
}
