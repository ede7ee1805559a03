package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/analystdemo/internal/cli/config"
	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/internal/export"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the demo page to a file",
		Long: `Render the demo page without starting a server.

Formats:
  html      standalone page, same markup the server returns for /
  markdown  one heading per section, tables as pipe tables
  json      the view tree, tables as column and row arrays
  yaml      same structure as json`,
		Example: `  # Standalone HTML page
  analystdemo export --out demo.html

  # View tree as JSON on stdout
  analystdemo export -f json`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", config.DefaultExportFormat, "Output format (html|markdown|json|yaml)")
	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(export.Formats()))
		for _, f := range export.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Export.Out != "" && cfg.Export.Out != "-" {
		f, createErr := os.Create(cfg.Export.Out)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if err := export.Export(ctx, w, content.BuildView(), format); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	if cfg.Export.Out != "" && cfg.Export.Out != "-" {
		logger.Info("exported demo page", "format", string(format), "path", cfg.Export.Out)
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s)\n", cfg.Export.Out, strings.ToUpper(string(format)))
	}
	return nil
}
