// Package tui renders a view tree for the terminal, either as a plain
// summary or as an interactive tabbed browser.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"

	"github.com/leapstack-labs/analystdemo/pkg/core"
)

// DefaultWidth is used when Options.Width is not set.
const DefaultWidth = 80

// ErrUnknownSection is returned when Options.Section matches no section.
var ErrUnknownSection = errors.New("unknown section")

// Options controls Summary output.
type Options struct {
	// Section limits output to one section, matched by slug or name.
	Section string
	NoColor bool
	Width   int
}

// Summary writes a non-interactive rendition of tree to w.
func Summary(w io.Writer, tree *core.ViewTree, opts Options) error {
	if err := tree.Validate(); err != nil {
		return err
	}

	sections := tree.Sections
	if opts.Section != "" {
		s, ok := findSection(tree, opts.Section)
		if !ok {
			return fmt.Errorf("%w: %q (available: %s)", ErrUnknownSection, opts.Section, strings.Join(slugs(tree), ", "))
		}
		sections = []core.Section{s}
	}

	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	st := newStyles(r)
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	if opts.Section == "" {
		b.WriteString(st.title.Render(tree.Title))
		b.WriteString("\n\n")
		if tree.Header != "" {
			b.WriteString(strings.TrimSpace(tree.Header))
			b.WriteString("\n\n")
		}
	}
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.section.Render(s.Name))
		b.WriteString("\n\n")
		b.WriteString(renderBlocks(st, s.Blocks, width))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func findSection(tree *core.ViewTree, key string) (core.Section, bool) {
	for _, s := range tree.Sections {
		if s.Slug == key || s.Name == key {
			return s, true
		}
	}
	return core.Section{}, false
}

func slugs(tree *core.ViewTree) []string {
	out := make([]string, len(tree.Sections))
	for i, s := range tree.Sections {
		out[i] = s.Slug
	}
	return out
}

// renderBlocks renders blocks as plain terminal text, one block per paragraph.
func renderBlocks(st styles, blocks []core.Block, width int) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(renderBlock(st, blk, width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBlock(st styles, blk core.Block, width int) string {
	switch blk.Kind {
	case core.BlockMarkdown:
		return strings.TrimSpace(blk.Text) + "\n"
	case core.BlockNotice:
		return st.notice.Render("! "+strings.TrimSpace(blk.Text)) + "\n"
	case core.BlockCode:
		return st.code.Render(strings.TrimRight(blk.Text, "\n")) + "\n"
	case core.BlockDivider:
		return st.muted.Render(strings.Repeat("─", max(width, 1))) + "\n"
	case core.BlockTable:
		return renderTable(blk.Table, blk.Title)
	case core.BlockAccordion:
		marker := "▸"
		if blk.Open {
			marker = "▾"
		}
		body := renderBlocks(st, blk.Children, max(width-2, 1))
		return st.accordion.Render(marker+" "+blk.Title) + "\n\n" + indent(body, "  ")
	default:
		return ""
	}
}

func renderTable(t *core.SampleTable, caption string) string {
	if t == nil {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	if caption != "" {
		tw.SetTitle(caption)
	}

	cols := t.Columns()
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	tw.AppendHeader(header)

	numeric := make([]bool, len(cols))
	for i := range t.Len() {
		row := t.Row(i)
		out := make(table.Row, len(row))
		for j, v := range row {
			out[j] = v.String()
			if v.Kind() == core.ValueNumber {
				numeric[j] = true
			}
		}
		tw.AppendRow(out)
	}

	var configs []table.ColumnConfig
	for i, isNum := range numeric {
		if isNum {
			configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render() + "\n"
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
