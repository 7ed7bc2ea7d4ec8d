package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/install"
)

// checkEnv reports missing binaries other than the script runner.
func checkEnv() []Issue {
	if err := git.CheckGit(); err != nil {
		return []Issue{{
			Key:         "git",
			Description: err.Error(),
			Hint:        "install git (https://git-scm.com)",
		}}
	}
	return nil
}

// checkHook reports a missing or foreign pre-commit hook.
func checkHook(ctx context.Context, root string) []Issue {
	st, err := install.Inspect(ctx, root)
	if err != nil {
		return []Issue{{Key: install.HookName, Description: err.Error()}}
	}

	switch st.State {
	case install.Absent:
		return []Issue{{
			Key:         st.Path,
			Description: "pre-commit hook is not installed",
			FixAction:   FixInstall,
			Hint:        "run 'precommit install'",
		}}
	case install.Foreign:
		return []Issue{{
			Key:         st.Path,
			Description: "existing pre-commit hook was not installed by precommit",
			FixAction:   FixInstall,
			Hint:        "run 'precommit install' (the current hook is kept as pre-commit.old)",
		}}
	}
	return nil
}

// checkConfig loads the configuration and reports scripts that can't run.
func checkConfig(root string) []Issue {
	cfg, err := config.Load(root)
	if errors.Is(err, config.ErrNoConfig) {
		return []Issue{{
			Key:         root,
			Description: err.Error(),
			Hint:        fmt.Sprintf("create %s or add a \"pre-commit\" key to %s", config.FileName, config.PackageFileName),
		}}
	}
	if err != nil {
		return []Issue{{Key: root, Description: err.Error()}}
	}

	if len(cfg.Run) == 0 {
		return []Issue{{
			Key:         "run",
			Description: "no scripts configured to run",
			Hint:        "set \"run\" or define a \"test\" script",
		}}
	}

	var issues []Issue
	for _, name := range cfg.Undefined() {
		issue := Issue{Key: name, Description: "script is not defined"}
		if alts := config.Suggest(name, cfg.KnownScripts()); len(alts) > 0 {
			issue.Hint = "did you mean " + strings.Join(alts, ", ") + "?"
		}
		issues = append(issues, issue)
	}

	if cfg.NeedsRunner() {
		if _, err := exec.LookPath(cfg.Runner); err != nil {
			issues = append(issues, Issue{
				Key:         cfg.Runner,
				Description: "script runner not found in PATH",
				Hint:        fmt.Sprintf("install %s or set runner / %s", cfg.Runner, config.RunnerEnvVar),
				Category:    CategoryEnv,
			})
		}
	}
	return issues
}
