package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yousiffaraj287/file-stats/internal/cli"
	"github.com/yousiffaraj287/file-stats/internal/cli/config"
	"github.com/yousiffaraj287/file-stats/pkg/filestats"
)

var (
	// These are set during build time using -ldflags
	version = "dev"     // Default version
	commit  = "none"    // Default commit hash
	date    = "unknown" // Default build date

	// Flags persistent across commands
	cfgFile string // Path to config file
	verbose bool   // Verbose logging flag
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-stats <filename>",
	Short: "Reports line, word, character, and byte counts for a file as JSON.",
	Long: `file-stats analyzes a single text file in one sequential byte pass and
writes the statistics as a JSON object on stdout, for consumption by an
orchestrating agent framework.

Reported metrics:
  - lines (newline count)
  - words (whitespace-delimited tokens)
  - characters (bytes read)
  - size_bytes (file size)

The process exits 0 on success and 1 on failure; the consumer branches on the
"status" field of the emitted object. Diagnostics go to stderr only.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	// Argument count errors must yield the error-shaped JSON object rather
	// than Cobra's usage text, so validation happens inside RunE.
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error { // minimal comment
		// Wrong argument count is rejected before any file or config access.
		if len(args) != 1 {
			reporter := filestats.NewReporter(cmd.OutOrStdout(), nil)
			_ = reporter.EmitError(filestats.UsageMessage)
			return filestats.ErrUsage
		}

		// Create a context that listens for interrupt signals
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// Load ambient configuration (delegated)
		opts, logger, err := config.Load(cfgFile, verbose)
		if err != nil {
			// config.Load logged the specific cause to stderr already; the
			// orchestrator still needs an error-shaped object on stdout.
			reporter := filestats.NewReporter(cmd.OutOrStdout(), nil)
			_ = reporter.EmitError(err.Error())
			return err
		}

		opts.Path = args[0]
		opts.Out = cmd.OutOrStdout()

		// Execute the main application logic (delegated)
		return cli.Run(ctx, opts, logger)
	},
}

// Execute runs the root command and maps its outcome to the process exit
// code: 0 on success, 1 on any failure. The JSON error object has already
// been written by the time an error propagates here.
func Execute() int {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// init registers persistent flags for the root command.
func init() { // minimal comment
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is search ., $HOME/.config/file-stats/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging on stderr")

	// A positional argument must never be swallowed by the implicit
	// completion subcommand.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Flag parse failures take the same JSON path as a wrong argument count.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		reporter := filestats.NewReporter(cmd.OutOrStdout(), nil)
		_ = reporter.EmitError(filestats.UsageMessage)
		return filestats.ErrUsage
	})
}
