//go:build integration

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit and changes the
// test's working directory to it. Returns the repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := resolvePath(t, t.TempDir())

	gitRun(t, repoPath, "init")
	gitRun(t, repoPath, "config", "user.email", "test@test.com")
	gitRun(t, repoPath, "config", "user.name", "Test User")
	gitRun(t, repoPath, "config", "commit.gpgsign", "false")

	writeTestFile(t, repoPath, "README.md", "# test\n")
	gitRun(t, repoPath, "add", "README.md")
	gitRun(t, repoPath, "commit", "-m", "Initial commit")

	t.Chdir(repoPath)
	return repoPath
}

func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func readTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// runPrecommit executes the command tree with args and returns the exit code.
func runPrecommit(t *testing.T, args ...string) int {
	t.Helper()
	return execute(t.Context(), newRootCmd(), args)
}
