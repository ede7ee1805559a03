package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/pkg/core"
)

func exportString(t *testing.T, f Format) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Export(context.Background(), &buf, content.BuildView(), f))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"html", FormatHTML, false},
		{"HTML", FormatHTML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{" yml ", FormatYAML, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport_HTML(t *testing.T) {
	out := exportString(t, FormatHTML)
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "section-setup-guide")
}

func TestExport_Markdown(t *testing.T) {
	out := exportString(t, FormatMarkdown)
	tree := content.BuildView()

	last := -1
	for _, s := range tree.Sections {
		idx := strings.Index(out, "# "+s.Name+"\n")
		require.GreaterOrEqual(t, idx, 0, "missing heading for %s", s.Name)
		assert.Greater(t, idx, last, "section %s out of order", s.Name)
		last = idx
	}

	assert.Contains(t, out, "Tasty Bytes Customer Analytics")
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "Dahlia Buchanan")
	for _, q := range content.ExampleQueries() {
		assert.Contains(t, out, q.Question)
	}
}

func TestExport_MarkdownCaptionPrecedesTable(t *testing.T) {
	out := exportString(t, FormatMarkdown)

	caption := strings.Index(out, "**Customer Count by Country**")
	require.GreaterOrEqual(t, caption, 0)
	row := strings.Index(out, "| United States")
	require.GreaterOrEqual(t, row, 0)
	assert.Less(t, caption, row)
	assert.Equal(t, 1, strings.Count(out, "Customer Count by Country"))
}

func TestExport_JSON(t *testing.T) {
	out := exportString(t, FormatJSON)

	var decoded struct {
		Title    string `json:"title"`
		Sections []struct {
			Name   string `json:"name"`
			Slug   string `json:"slug"`
			Blocks []struct {
				Kind  string `json:"kind"`
				Table *struct {
					Columns []string `json:"columns"`
					Rows    [][]any  `json:"rows"`
				} `json:"table"`
			} `json:"blocks"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, content.Title, decoded.Title)
	require.Len(t, decoded.Sections, content.SectionCount)
	assert.Equal(t, content.SectionExamples, decoded.Sections[1].Name)

	var tables int
	for _, b := range decoded.Sections[2].Blocks {
		if b.Kind == string(core.BlockTable) {
			tables++
			require.NotNil(t, b.Table)
			assert.Len(t, b.Table.Rows, 3)
			assert.Len(t, b.Table.Columns, 4)
		}
	}
	assert.Equal(t, 2, tables)
}

func TestExport_YAML(t *testing.T) {
	out := exportString(t, FormatYAML)

	var decoded struct {
		Title    string `yaml:"title"`
		Sections []struct {
			Name string `yaml:"name"`
		} `yaml:"sections"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, content.Title, decoded.Title)
	require.Len(t, decoded.Sections, content.SectionCount)
	assert.Equal(t, content.SectionAbout, decoded.Sections[5].Name)
	assert.Contains(t, out, "Customer Count by Country")
}

func TestExport_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := Export(context.Background(), &buf, content.BuildView(), Format("pdf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Export(context.Background(), &buf, &core.ViewTree{}, FormatJSON)
	assert.ErrorIs(t, err, core.ErrEmptyView)
}

func TestFormats(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
