package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/analystdemo/internal/cli/config"
	"github.com/leapstack-labs/analystdemo/internal/cli/testutil"
	"github.com/leapstack-labs/analystdemo/internal/content"
)

// withConfig loads config from the command's flags before it runs, the way
// the root command does.
func withConfig(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(c *cobra.Command, _ []string) error {
		cfg, err := config.Load("", c.Flags())
		if err != nil {
			return err
		}
		c.SetContext(config.WithConfig(c.Context(), cfg))
		return nil
	}
	return cmd
}

func run(t *testing.T, cmd *cobra.Command, args ...string) testutil.Result {
	t.Helper()
	testutil.Isolate(t, config.EnvPrefix)
	return testutil.Execute(context.Background(), t, withConfig(cmd), args...)
}

func TestExportCommand_JSONToStdout(t *testing.T) {
	res := run(t, NewExportCommand(), "--format", "json")
	require.NoError(t, res.Err)

	var decoded struct {
		Title    string `json:"title"`
		Sections []struct {
			Slug string `json:"slug"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Out), &decoded))
	assert.Equal(t, content.Title, decoded.Title)
	assert.Len(t, decoded.Sections, content.SectionCount)
}

func TestExportCommand_DefaultIsHTML(t *testing.T) {
	res := run(t, NewExportCommand())
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "<!doctype html>")
}

func TestExportCommand_ToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.md")

	res := run(t, NewExportCommand(), "-f", "md", "-o", out)
	require.NoError(t, res.Err)
	assert.Empty(t, res.Out)
	assert.Contains(t, res.ErrOut, "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# "+content.SectionSetupGuide)
}

func TestExportCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{name: "unknown format", args: []string{"--format", "pdf"}, errSubstr: "unknown export format"},
		{name: "unwritable path", args: []string{"--out", filepath.Join("missing-dir", "x.html")}, errSubstr: "failed to create output file"},
		{name: "positional args", args: []string{"extra"}, errSubstr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, NewExportCommand(), tt.args...)
			require.Error(t, res.Err)
			assert.Contains(t, res.Err.Error(), tt.errSubstr)
		})
	}
}

func TestShowCommand(t *testing.T) {
	res := run(t, NewShowCommand())
	require.NoError(t, res.Err)
	for _, name := range []string{content.SectionDemoVideo, content.SectionExamples, content.SectionAbout} {
		assert.Contains(t, res.Out, name)
	}
}

func TestShowCommand_Section(t *testing.T) {
	res := run(t, NewShowCommand(), "--section", "architecture")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, content.SectionArchitecture)
	assert.NotContains(t, res.Out, content.SectionSetupGuide)

	res = run(t, NewShowCommand(), "-s", "missing")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "unknown section")
}

func TestShowCommand_InteractiveNeedsTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	res := run(t, NewShowCommand(), "--interactive")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "requires a terminal")
}

func TestServeCommand_StopsWithContext(t *testing.T) {
	testutil.Isolate(t, config.EnvPrefix)

	opened := make(chan string, 1)
	orig := openBrowser
	openBrowser = func(url string) { opened <- url }
	t.Cleanup(func() { openBrowser = orig })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := testutil.Execute(ctx, t, withConfig(NewServeCommand()), "--host", "127.0.0.1", "--port", "0")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "Serving")
	assert.Contains(t, res.Out, content.Title)
	assert.Contains(t, res.Out, "http://127.0.0.1:")
	assert.NotContains(t, res.Out, "127.0.0.1:0\n", "prints the bound port")
	assert.Empty(t, opened, "no browser for an ephemeral port")
}

func TestServeCommand_InvalidPort(t *testing.T) {
	res := run(t, NewServeCommand(), "--port", "70000")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "server.port")
}

func TestBrowserURL(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 7860, "http://localhost:7860"},
		{"", 8080, "http://localhost:8080"},
		{"::", 80, "http://localhost:80"},
		{"127.0.0.1", 9000, "http://127.0.0.1:9000"},
		{"::1", 9000, "http://[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, browserURL(tt.host, tt.port))
		})
	}
}

func TestServeFlags(t *testing.T) {
	cmd := NewServeCommand()
	for _, name := range []string{"port", "host", "no-browser", "watch", "static-dir", "dev"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, port)
}
