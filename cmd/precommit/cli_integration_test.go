//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dirtyCheckScripts = `
run = ["check"]
stash = true

[scripts.check]
command = "test -z \"$(cat dirty.txt 2>/dev/null)\" || exit 4"
`

// TestRun_ScriptFailureExitCode verifies the hook exits with the script's code.
//
// Scenario: User commits while a configured script exits with status 4
// Expected: `precommit run` exits 4, rejecting the commit
func TestRun_ScriptFailureExitCode(t *testing.T) {
	repo := setupTestRepo(t)

	writeTestFile(t, repo, ".precommit.toml", "run = [\"check\"]\n\n[scripts.check]\ncommand = \"exit 4\"\n")
	gitRun(t, repo, "add", ".precommit.toml")

	if code := runPrecommit(t, "run"); code != 4 {
		t.Errorf("exit code = %d, want 4", code)
	}
}

// TestRun_StashHidesUnstagedChanges verifies scripts only see staged content.
//
// Scenario: dirty.txt is committed empty and modified without staging;
// the script fails when dirty.txt has content
// Expected: Hook passes and the unstaged change is restored afterwards
func TestRun_StashHidesUnstagedChanges(t *testing.T) {
	repo := setupTestRepo(t)

	writeTestFile(t, repo, "dirty.txt", "")
	writeTestFile(t, repo, ".precommit.toml", dirtyCheckScripts)
	gitRun(t, repo, "add", "dirty.txt", ".precommit.toml")
	gitRun(t, repo, "commit", "-m", "add config")

	writeTestFile(t, repo, "staged.txt", "staged\n")
	gitRun(t, repo, "add", "staged.txt")
	writeTestFile(t, repo, "dirty.txt", "work in progress\n")

	if code := runPrecommit(t, "run"); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if got := readTestFile(t, repo, "dirty.txt"); got != "work in progress\n" {
		t.Errorf("dirty.txt = %q, want unstaged change restored", got)
	}
	if got := gitRun(t, repo, "stash", "list"); got != "" {
		t.Errorf("stash list = %q, want empty", got)
	}
}

// TestRun_NoConfigSkips verifies a repo without configuration never blocks commits.
//
// Scenario: User commits in a repo with neither package.json nor .precommit.toml
// Expected: Exit code 0
func TestRun_NoConfigSkips(t *testing.T) {
	repo := setupTestRepo(t)
	writeTestFile(t, repo, "new.txt", "x\n")
	gitRun(t, repo, "add", "new.txt")

	if code := runPrecommit(t, "run"); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

// TestInstall_HookRunsBinary verifies install writes an executable shim.
//
// Scenario: User runs `precommit install --binary /opt/precommit` then `precommit uninstall`
// Expected: Shim execs the binary; uninstall removes it again
func TestInstall_HookRunsBinary(t *testing.T) {
	repo := setupTestRepo(t)
	hook := filepath.Join(repo, ".git", "hooks", "pre-commit")

	if code := runPrecommit(t, "install", "--binary", "/opt/precommit"); code != 0 {
		t.Fatalf("install exit code = %d, want 0", code)
	}

	data, err := os.ReadFile(hook)
	if err != nil {
		t.Fatalf("hook not written: %v", err)
	}
	if !strings.Contains(string(data), "exec '/opt/precommit' run") {
		t.Errorf("hook = %q, want exec of binary", data)
	}

	if code := runPrecommit(t, "uninstall"); code != 0 {
		t.Fatalf("uninstall exit code = %d, want 0", code)
	}
	if _, err := os.Stat(hook); !os.IsNotExist(err) {
		t.Errorf("hook still present after uninstall: %v", err)
	}
}

// TestDoctor_ReportsMissingHook verifies doctor fails until the hook is fixed.
//
// Scenario: User runs `precommit doctor` in a configured repo without the hook,
// then `precommit doctor --fix`
// Expected: First run exits 1, --fix installs the hook and exits 0
func TestDoctor_ReportsMissingHook(t *testing.T) {
	repo := setupTestRepo(t)
	writeTestFile(t, repo, ".precommit.toml", "run = [\"check\"]\n\n[scripts.check]\ncommand = \"true\"\n")

	if code := runPrecommit(t, "doctor"); code != 1 {
		t.Errorf("doctor exit code = %d, want 1", code)
	}
	if code := runPrecommit(t, "doctor", "--fix"); code != 0 {
		t.Errorf("doctor --fix exit code = %d, want 0", code)
	}
	if _, err := os.Stat(filepath.Join(repo, ".git", "hooks", "pre-commit")); err != nil {
		t.Errorf("hook not installed by --fix: %v", err)
	}
}
