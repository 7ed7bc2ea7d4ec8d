package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/log"
)

// HookName is the git hook this tool installs.
const HookName = "pre-commit"

// BackupSuffix is appended to a foreign hook that install replaces.
const BackupSuffix = ".old"

// Marker identifies hooks written by [Install].
const Marker = "# managed by precommit"

// ErrForeignHook is returned by Uninstall when the hook was not written by
// Install.
var ErrForeignHook = errors.New("pre-commit hook was not installed by precommit")

// State describes what currently sits at the hook path.
type State int

const (
	Absent State = iota
	Installed
	Foreign
)

func (s State) String() string {
	switch s {
	case Installed:
		return "installed"
	case Foreign:
		return "foreign"
	default:
		return "absent"
	}
}

// Status is the installation state of a repository's pre-commit hook.
type Status struct {
	State  State
	Path   string // hook file
	Backup bool   // a backed up foreign hook exists next to it
}

// shellQuote escapes a string for safe use in shell commands.
// e.g., "it's" becomes 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// shim is the hook script that hands over to binary.
func shim(binary string) string {
	return "#!/bin/sh\n" +
		Marker + "; remove with `precommit uninstall`\n" +
		"exec " + shellQuote(binary) + " run \"$@\"\n"
}

func hookPath(ctx context.Context, repoDir string) (string, error) {
	dir, err := git.HooksDir(ctx, repoDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HookName), nil
}

// Install writes the pre-commit hook of the repository at repoDir so that it
// runs binary. An existing hook that was not written by Install is kept as
// pre-commit.old.
func Install(ctx context.Context, repoDir, binary string) error {
	l := log.FromContext(ctx)

	path, err := hookPath(ctx, repoDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	st, err := readStatus(path)
	if err != nil {
		return err
	}
	if st.State == Foreign {
		existing, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read existing hook: %w", err)
		}
		if err := os.WriteFile(path+BackupSuffix, existing, 0755); err != nil {
			return fmt.Errorf("failed to back up existing hook: %w", err)
		}
		l.Printf("Detected an existing git pre-commit hook\n")
		l.Printf("Old pre-commit hook backed up to %s\n", HookName+BackupSuffix)
	}

	// remove first so a symlinked hook is replaced, not written through
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove existing hook: %w", err)
	}
	if err := os.WriteFile(path, []byte(shim(binary)), 0755); err != nil {
		return fmt.Errorf("failed to write hook: %w", err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}

	l.Debug("hook installed", "path", path, "binary", binary)
	return nil
}

// Uninstall removes the hook written by Install and restores a backed up
// hook if there is one. A missing hook is not an error.
func Uninstall(ctx context.Context, repoDir string) error {
	path, err := hookPath(ctx, repoDir)
	if err != nil {
		return err
	}

	st, err := readStatus(path)
	if err != nil {
		return err
	}
	switch st.State {
	case Absent:
		return nil
	case Foreign:
		return fmt.Errorf("%w: %s", ErrForeignHook, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove hook: %w", err)
	}

	if !st.Backup {
		return nil
	}
	backup := path + BackupSuffix
	if err := os.Rename(backup, path); err != nil {
		return fmt.Errorf("failed to restore %s: %w", backup, err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("failed to make restored hook executable: %w", err)
	}
	log.FromContext(ctx).Printf("Restored previous pre-commit hook from %s\n", HookName+BackupSuffix)
	return nil
}

// Inspect reports the installation state of the repository at repoDir.
func Inspect(ctx context.Context, repoDir string) (Status, error) {
	path, err := hookPath(ctx, repoDir)
	if err != nil {
		return Status{}, err
	}
	return readStatus(path)
}

func readStatus(path string) (Status, error) {
	st := Status{Path: path}

	if _, err := os.Stat(path + BackupSuffix); err == nil {
		st.Backup = true
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		st.State = Absent
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("failed to read hook: %w", err)
	}

	if strings.Contains(string(data), Marker) {
		st.State = Installed
	} else {
		st.State = Foreign
	}
	return st, nil
}
