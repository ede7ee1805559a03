// Package export writes a view tree to a file format outside the web runtime.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/leapstack-labs/analystdemo/internal/ui/components"
	"github.com/leapstack-labs/analystdemo/pkg/core"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

// Supported formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ErrUnknownFormat is returned for a format not in Formats().
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatMarkdown, FormatJSON, FormatYAML}
}

// ParseFormat normalises a user-supplied format name. "md" and "yml" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of html, markdown, json, yaml)", ErrUnknownFormat, s)
	}
}

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// Export writes tree to w in the given format.
func Export(ctx context.Context, w io.Writer, tree *core.ViewTree, format Format) error {
	if err := tree.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	switch format {
	case FormatHTML:
		return components.Page(components.PageData{Tree: tree}).Render(ctx, w)
	case FormatMarkdown:
		return writeMarkdown(ctx, w, tree)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeMarkdown renders every section to HTML and converts the result back to
// Markdown, so tables and accordions come out the way the page shows them.
// Sections are emitted as level-one headings in tree order.
func writeMarkdown(ctx context.Context, w io.Writer, tree *core.ViewTree) error {
	var out strings.Builder

	if tree.Header != "" {
		out.WriteString(strings.TrimSpace(tree.Header))
		out.WriteString("\n\n")
	}

	for _, s := range tree.Sections {
		var buf bytes.Buffer
		for _, b := range captionsFirst(s.Blocks) {
			if err := components.Block(b).Render(ctx, &buf); err != nil {
				return fmt.Errorf("section %q: %w", s.Name, err)
			}
		}
		md, err := mdConverter.ConvertString(buf.String())
		if err != nil {
			return fmt.Errorf("section %q: convert to markdown: %w", s.Name, err)
		}
		fmt.Fprintf(&out, "# %s\n\n%s\n\n", s.Name, strings.TrimSpace(md))
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// captionsFirst moves table captions into a bold line above the table. The
// converter otherwise emits <caption> as a paragraph after the pipe table.
func captionsFirst(blocks []core.Block) []core.Block {
	out := make([]core.Block, 0, len(blocks))
	for _, b := range blocks {
		switch {
		case b.Kind == core.BlockTable && b.Title != "":
			out = append(out, core.Block{Kind: core.BlockMarkdown, Text: "**" + b.Title + "**"})
			b.Title = ""
		case len(b.Children) > 0:
			b.Children = captionsFirst(b.Children)
		}
		out = append(out, b)
	}
	return out
}
