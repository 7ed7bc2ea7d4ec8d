package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/precommit/internal/cmd"
)

// TopLevel returns the root of the work tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Status returns the porcelain status of the work tree at dir.
// An empty string means there is nothing to commit.
func Status(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ObjectHash resolves a ref or object name to its hash.
// Returns "" with a nil error when the name does not exist.
func ObjectHash(ctx context.Context, dir, name string) (string, error) {
	args := gitArgs(dir, []string{"rev-parse", "--quiet", "--verify", name})
	res, err := cmd.Default.Exec(ctx, "git", args, cmd.Options{})
	if err != nil {
		return "", err
	}
	switch res.ExitCode {
	case 0:
		return strings.TrimSpace(string(res.Stdout)), nil
	case 1:
		// rev-parse --verify exits 1 when the name doesn't resolve
		return "", nil
	default:
		return "", &cmd.ExitError{Name: "git", Args: args, Code: res.ExitCode, Stderr: strings.TrimSpace(string(res.Stderr))}
	}
}

// SetConfig writes a repository-local config value.
func SetConfig(ctx context.Context, dir, key, value string) error {
	if err := runGit(ctx, dir, "config", key, value); err != nil {
		return fmt.Errorf("failed to set %s: %v", key, err)
	}
	return nil
}

// HooksDir returns the absolute path of the hooks directory for the repo at
// dir, honouring core.hooksPath.
func HooksDir(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to locate hooks directory: %v", err)
	}
	path := strings.TrimSpace(string(output))
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path, nil
}
