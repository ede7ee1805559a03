package commands

import (
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/analystdemo/internal/cli/config"
	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/internal/ui"
)

// openBrowser is swapped out in tests.
var openBrowser = openBrowserDefault

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page over HTTP",
		Long: `Start a web server showing the Cortex Analyst demo page.

The page has one tab per section: demo video, example queries, sample
results, architecture, setup guide and about. The selected tab is
remembered per browser.`,
		Example: `  # Serve on the default port (7860)
  analystdemo serve

  # Serve on a custom port without opening a browser
  analystdemo serve --port 3000 --no-browser

  # Live reload while editing the stylesheet
  analystdemo serve --dev --watch --static-dir internal/ui/resources/static`,
		RunE: RunServe,
	}

	AddServeFlags(cmd.Flags())
	return cmd
}

// AddServeFlags registers the serve flags on fs. The root command shares
// them so that running analystdemo with no subcommand serves the page.
func AddServeFlags(fs *pflag.FlagSet) {
	fs.Int("port", config.DefaultPort, "Port to serve on (0 picks a free port)")
	fs.String("host", config.DefaultHost, "Interface to bind")
	fs.Bool("no-browser", false, "Don't auto-open browser")
	fs.Bool("watch", false, "Reload the page when static assets change (requires --dev)")
	fs.String("static-dir", "", "Serve static assets from this directory instead of the embedded copy")
	fs.Bool("dev", false, "Enable development mode (live reload endpoints)")
}

// RunServe starts the web runtime with the config stored in the command
// context and blocks until the context is cancelled.
func RunServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	tree := content.BuildView()
	server := ui.NewServer(ui.Config{
		Tree:            tree,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		Watch:           cfg.Server.Watch,
		Dev:             cfg.Server.Dev,
		StaticDir:       cfg.Server.StaticDir,
		SessionSecret:   cfg.Server.SessionSecret,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          logger,
	})

	if cfg.Server.Watch && !cfg.Server.Dev {
		logger.Warn("--watch has no effect without --dev")
	}

	ln, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr(), err)
	}

	// Port 0 is resolved by the listener.
	url := browserURL(cfg.Server.Host, ln.Addr().(*net.TCPAddr).Port)
	if !cfg.Server.NoBrowser && cfg.Server.Port != 0 {
		go openBrowser(url)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Serving %q on %s\n", tree.Title, url)
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ServeListener(ctx, ln)
}

// browserURL is the address a local browser should use. Wildcard binds are
// reachable through localhost.
func browserURL(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// openBrowserDefault opens the default browser to the specified URL.
func openBrowserDefault(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
