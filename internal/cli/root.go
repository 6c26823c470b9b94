package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kweiler/papergrid/pkg/buildinfo"
)

// Execute runs the papergrid CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, sizes,
// colors, preview, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "papergrid",
		Short:        "Papergrid renders printable engineering grid sheets",
		Long:         `Papergrid is a CLI tool for generating single-page engineering graph paper: a configurable grid with major and minor lines, margins, centering, a border, and thirds dividers, written as PDF, SVG, or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSizesCmd())
	root.AddCommand(newColorsCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
