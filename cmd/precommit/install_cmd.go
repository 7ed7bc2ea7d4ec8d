package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/install"
	"github.com/raphi011/precommit/internal/output"
)

func newInstallCmd() *cobra.Command {
	var binary string

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install the git pre-commit hook",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Install the git pre-commit hook in the current repository.

The hook is written to the directory git uses for hooks (core.hooksPath is
honoured). An existing hook that precommit did not write is kept as
pre-commit.old and restored by 'precommit uninstall'.`,
		Example: `  precommit install                       # Hook runs this binary
  precommit install --binary ~/bin/precommit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if binary == "" {
				binary, err = os.Executable()
				if err != nil {
					return fmt.Errorf("failed to locate precommit binary: %w", err)
				}
			}

			if err := install.Install(ctx, workDir, binary); err != nil {
				return err
			}

			st, err := install.Inspect(ctx, workDir)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Check(true, "Installed "+st.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&binary, "binary", "", "Binary the hook runs (default: this executable)")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove the git pre-commit hook",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Remove the pre-commit hook written by 'precommit install'.

A hook backed up to pre-commit.old during install is restored. Hooks that
precommit did not write are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if err := install.Uninstall(ctx, workDir); err != nil {
				return err
			}
			output.FromContext(ctx).Check(true, "Removed pre-commit hook")
			return nil
		},
	}
}
