package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/install"
	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/output"
	"github.com/raphi011/precommit/internal/prompt"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Interactively configure the hook",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Interactively choose which scripts run before each commit.

Scripts are offered from package.json and the [scripts] table of an
existing .precommit.toml. The answers are written to .precommit.toml, and
the git hook is installed on request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
				return fmt.Errorf("init needs a terminal; write %s by hand instead", config.FileName)
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			root, err := git.TopLevel(ctx, workDir)
			if err != nil {
				return err
			}

			cfg, err := config.Load(root)
			if err != nil && !errors.Is(err, config.ErrNoConfig) {
				return err
			}

			known := cfg.KnownScripts()
			if len(known) == 0 {
				return fmt.Errorf("no scripts found: add \"scripts\" to %s or [scripts.NAME] to %s", config.PackageFileName, config.FileName)
			}

			scripts, err := prompt.MultiSelect("Scripts to run before each commit", known, cfg.Run)
			if err != nil {
				return err
			}
			if scripts.Cancelled {
				l.Println("Cancelled")
				return nil
			}
			cfg.Run = scripts.Values

			stash, err := prompt.Confirm("Stash unstaged changes while the scripts run?", cfg.Stash.Enabled())
			if err != nil {
				return err
			}
			if stash.Cancelled {
				l.Println("Cancelled")
				return nil
			}
			switch {
			case !stash.Confirmed:
				cfg.Stash = config.NoStash()
			case !cfg.Stash.Enabled():
				cfg.Stash = config.StashOnly(false, false)
			}

			template, err := prompt.TextInput("Commit message template (empty for none)", ".gitmessage", cfg.Template)
			if err != nil {
				return err
			}
			if template.Cancelled {
				l.Println("Cancelled")
				return nil
			}
			cfg.Template = template.Value

			path, err := cfg.Save(root)
			if err != nil {
				return err
			}
			out.Check(true, "Wrote "+path)

			hook, err := prompt.Confirm("Install the git pre-commit hook now?", true)
			if err != nil {
				return err
			}
			if !hook.Confirmed || hook.Cancelled {
				return nil
			}

			binary, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to locate precommit binary: %w", err)
			}
			if err := install.Install(ctx, root, binary); err != nil {
				return err
			}
			out.Check(true, "Installed pre-commit hook")
			return nil
		},
	}
}
