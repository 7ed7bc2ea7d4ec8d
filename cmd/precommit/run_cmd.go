package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/runner"
)

func newRunCmd() *cobra.Command {
	var ignoreStatus bool

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the configured scripts (hook entry point)",
		GroupID: GroupHook,
		// git passes no arguments to pre-commit; accept any so the shim can
		// forward "$@" unchanged
		Args: cobra.ArbitraryArgs,
		Long: `Run the configured scripts, as git does before every commit.

The commit is rejected with the failing script's exit code if a script
fails. Every other problem (git or runner missing, no configuration,
nothing staged, stash errors) is reported and the commit goes ahead.`,
		Example: `  precommit run                  # Run as the hook would
  precommit run --ignore-status  # Run even without changes
  precommit run -v               # Show git and runner commands`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			sess, err := runner.Bootstrap(ctx, runner.BootstrapOptions{
				Dir:          workDir,
				IgnoreStatus: ignoreStatus,
			})

			l := sess.Logger(log.FromContext(ctx), os.Stderr)
			ctx = log.WithLogger(ctx, l)

			var skipErr *runner.SkipError
			if errors.As(err, &skipErr) {
				l.Message(skipErr.Error())
				return nil
			}
			if err != nil {
				return err
			}

			for _, w := range sess.Warnings() {
				l.Message(w)
			}

			out := sess.Orchestrator(nil).Run(ctx)
			runner.Report(ctx, out)

			if code := out.ExitCode(); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreStatus, "ignore-status", false, "Run even if git reports no changes")

	return cmd
}
