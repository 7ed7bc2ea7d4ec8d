package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/doctor"
	"github.com/raphi011/precommit/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose hook setup problems",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Diagnose why the pre-commit hook would not run as expected.

Checks:
- git and the script runner are installed
- the current directory is inside a git repository
- the pre-commit hook is installed and managed by precommit
- the configuration loads and has something to run
- every configured script is defined`,
		Example: `  precommit doctor          # Check for issues
  precommit doctor --fix    # Install the hook if it is missing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			issues, err := doctor.Run(ctx, workDir)
			if err != nil {
				return err
			}
			doctor.Report(ctx, issues)

			if len(issues) == 0 {
				return nil
			}

			remaining := len(issues)
			if fix {
				binary, err := os.Executable()
				if err != nil {
					return fmt.Errorf("failed to locate precommit binary: %w", err)
				}
				fixed, err := doctor.Fix(ctx, workDir, binary, issues)
				if err != nil {
					return err
				}
				remaining -= fixed
			} else if doctor.Fixable(issues) {
				out.Println()
				out.Println("Run 'precommit doctor --fix' to repair.")
			}

			if remaining > 0 {
				return fmt.Errorf("%d issue(s) found", remaining)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Auto-fix recoverable issues")

	return cmd
}
