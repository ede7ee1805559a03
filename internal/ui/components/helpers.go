// Package components renders view trees as HTML templ components.
package components

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/analystdemo/internal/markdown"
	"github.com/leapstack-labs/analystdemo/pkg/core"
)

// DatastarScript is the client runtime used for tab switching and SSE patches.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// PageData holds everything needed to render the full page.
type PageData struct {
	Tree   *core.ViewTree
	Active string // slug of the initially visible section
	IsDev  bool
}

// activeSlug returns p.Active if it names a section, otherwise the first slug.
func (p PageData) activeSlug() string {
	if _, ok := p.Tree.Section(p.Active); ok {
		return p.Active
	}
	if len(p.Tree.Sections) > 0 {
		return p.Tree.Sections[0].Slug
	}
	return ""
}

// SectionID is the DOM id of a section panel.
func SectionID(slug string) string {
	return "section-" + slug
}

func tabSignal(slug string) string {
	return fmt.Sprintf("'%s'", slug)
}

func tabIs(slug string) string {
	return fmt.Sprintf("$tab == '%s'", slug)
}

func tabClick(slug string) string {
	return fmt.Sprintf("$tab = '%s'; @get('/sections/%s')", slug, slug)
}

// markdownHTML writes the rendered HTML of src without escaping it.
func markdownHTML(src string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out, err := markdown.Render(src)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

func invalidBlock(kind core.BlockKind) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return fmt.Errorf("render block: %w: %q", core.ErrInvalidBlock, kind)
	})
}

func missingTable() templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return fmt.Errorf("render table: %w: missing table", core.ErrInvalidBlock)
	})
}
