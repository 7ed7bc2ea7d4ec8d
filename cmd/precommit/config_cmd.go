package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/output"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Show effective configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Show the effective hook configuration in .precommit.toml syntax.

Settings are merged from package.json and .precommit.toml in the repository
root, .precommit.toml winning per setting. PRECOMMIT_RUNNER overrides the
script runner.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			root, err := git.TopLevel(ctx, workDir)
			if err != nil {
				return err
			}

			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			for _, src := range cfg.Sources {
				out.Printf("# from %s\n", src)
			}
			return cfg.WriteTOML(out.Writer())
		},
	}
}
