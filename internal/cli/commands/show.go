package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/analystdemo/internal/cli/config"
	"github.com/leapstack-labs/analystdemo/internal/content"
	"github.com/leapstack-labs/analystdemo/internal/tui"
)

// isTerminal reports whether stdout is a terminal; swapped out in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the demo page in the terminal",
		Long: `Print the demo page as styled terminal text.

With --interactive, browse the sections as tabs instead: left/right (or h/l)
switch tabs, up/down scroll, q quits.`,
		Example: `  # Everything
  analystdemo show

  # One section, by slug or name
  analystdemo show --section sample-results

  # Tabbed browser
  analystdemo show -i`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().StringP("section", "s", "", "Only show this section (slug or name)")
	cmd.Flags().BoolP("interactive", "i", false, "Browse sections interactively")

	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		tree := content.BuildView()
		slugs := make([]string, len(tree.Sections))
		for i, s := range tree.Sections {
			slugs[i] = s.Slug
		}
		return slugs, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	tree := content.BuildView()

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		if !isTerminal() {
			return errors.New("--interactive requires a terminal")
		}
		return tui.Run(ctx, tree)
	}

	section, _ := cmd.Flags().GetString("section")
	return tui.Summary(cmd.OutOrStdout(), tree, tui.Options{
		Section: section,
		NoColor: cfg.NoColor,
	})
}
