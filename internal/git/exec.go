package git

import (
	"context"

	"github.com/raphi011/precommit/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a buffered git command with verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a buffered git command with verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// runGitInherit executes a git command attached to the terminal so the user
// sees git's own messages verbatim.
func runGitInherit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunInherit(ctx, "", "git", gitArgs(dir, args)...)
}
