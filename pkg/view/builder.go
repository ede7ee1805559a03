// Package view provides a fluent builder for view trees.
//
// A tree is assembled declaratively, one section (tab) at a time:
//
//	tree := view.New("Demo").
//		Header("# Welcome").
//		Section("💡 Examples", func(s *view.SectionBuilder) {
//			s.Markdown("## Try these")
//			s.Accordion("Example 1", true, func(a *view.SectionBuilder) {
//				a.Code("SELECT 1", "sql")
//			})
//		}).
//		MustBuild()
//
// The builder only describes what to show. Rendering is left to a runtime.
package view

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/analystdemo/pkg/core"
)

// Builder assembles a core.ViewTree.
type Builder struct {
	title    string
	header   string
	sections []core.Section
	slugs    map[string]int
}

// New starts a tree with the given page title.
func New(title string) *Builder {
	return &Builder{
		title: title,
		slugs: make(map[string]int),
	}
}

// Header sets the Markdown shown above the tabs.
func (b *Builder) Header(markdown string) *Builder {
	b.header = markdown
	return b
}

// Section appends a section. fn fills it with blocks; it may be nil.
func (b *Builder) Section(name string, fn func(s *SectionBuilder)) *Builder {
	sb := &SectionBuilder{}
	if fn != nil {
		fn(sb)
	}
	b.sections = append(b.sections, core.Section{
		Name:   name,
		Slug:   b.uniqueSlug(Slugify(name)),
		Blocks: sb.blocks,
	})
	return b
}

func (b *Builder) uniqueSlug(slug string) string {
	n := b.slugs[slug]
	b.slugs[slug] = n + 1
	if n == 0 {
		return slug
	}
	return slug + "-" + strconv.Itoa(n+1)
}

// Build returns the tree, or an error if it breaks the renderer contract.
func (b *Builder) Build() (*core.ViewTree, error) {
	tree := &core.ViewTree{
		Title:    b.title,
		Header:   b.header,
		Sections: append([]core.Section(nil), b.sections...),
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("invalid view %q: %w", b.title, err)
	}
	return tree, nil
}

// MustBuild is Build for compiled-in content, where an invalid tree is a
// programming error.
func (b *Builder) MustBuild() *core.ViewTree {
	tree, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tree
}

// SectionBuilder appends blocks to a section or accordion body.
type SectionBuilder struct {
	blocks []core.Block
}

// Markdown appends a Markdown text block.
func (s *SectionBuilder) Markdown(text string) *SectionBuilder {
	return s.add(core.Block{Kind: core.BlockMarkdown, Text: text})
}

// Code appends a code snippet. An empty language means plain text.
func (s *SectionBuilder) Code(text, language string) *SectionBuilder {
	return s.add(core.Block{Kind: core.BlockCode, Text: text, Language: language})
}

// Table appends a table reference with a caption.
func (s *SectionBuilder) Table(t *core.SampleTable, caption string) *SectionBuilder {
	return s.add(core.Block{Kind: core.BlockTable, Table: t, Title: caption})
}

// Accordion appends a collapsible region whose body is filled by fn.
func (s *SectionBuilder) Accordion(title string, open bool, fn func(a *SectionBuilder)) *SectionBuilder {
	inner := &SectionBuilder{}
	if fn != nil {
		fn(inner)
	}
	return s.add(core.Block{Kind: core.BlockAccordion, Title: title, Open: open, Children: inner.blocks})
}

// Divider appends a horizontal rule.
func (s *SectionBuilder) Divider() *SectionBuilder {
	return s.add(core.Block{Kind: core.BlockDivider})
}

// Notice appends an emphasised callout.
func (s *SectionBuilder) Notice(text string) *SectionBuilder {
	return s.add(core.Block{Kind: core.BlockNotice, Text: text})
}

// Blocks returns the blocks appended so far.
func (s *SectionBuilder) Blocks() []core.Block {
	return append([]core.Block(nil), s.blocks...)
}

func (s *SectionBuilder) add(b core.Block) *SectionBuilder {
	s.blocks = append(s.blocks, b)
	return s
}
