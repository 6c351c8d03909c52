// Package cli implements the lexway command-line interface.
//
// Lexway compiles declarative rewrite rules into a transition graph and
// transduces input strings through it. The CLI loads a TOML ruleset,
// compiles it fresh (graphs are never persisted), and exposes it through
// batch runs, statistics, Graphviz export, an HTTP API, and an interactive
// explorer.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lexway/lexway/pkg/buildinfo"
)

// Execute runs the lexway CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "lexway",
		Short:        "Lexway transduces strings through declarative rewrite rules",
		Long:         `Lexway is a rule-driven finite-state transducer: rewrite rules declared in TOML compile into a shared transition graph, and input strings map through it to output strings.`,
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

	root.AddCommand(newRunCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTryCmd())

	return root.ExecuteContext(ctx)
}
