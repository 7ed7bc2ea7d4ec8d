package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupHook  = "hook"
	GroupSetup = "setup"
)

// exitError ends the process with code without printing anything; the
// command already reported what went wrong.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var verbose, quiet bool

	rootCmd := &cobra.Command{
		Use:   "precommit",
		Short: "Run project scripts as a git pre-commit hook",
		Long: `precommit runs the scripts configured in package.json or .precommit.toml
before every commit and rejects the commit when one of them fails.

With stash enabled, changes that are not staged are set aside while the
scripts run, so they check exactly what is about to be committed.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()

			// Create logger (stderr for diagnostics)
			ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))

			// Add output printer (stdout for primary data)
			ctx = output.WithPrinter(ctx, output.New(os.Stdout, log.ColorEnabled(os.Stdout, nil)))

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHook, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.AddCommand(newRunCmd())

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return execute(ctx, newRootCmd(), os.Args[1:])
}

func execute(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'precommit -h' for help")
		return 1
	}
	return 0
}
