package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StashLabel names stash entries created by the hook so a user can tell them
// apart from their own when recovering by hand.
const StashLabel = "pre-commit stash"

// StashRef is the ref whose hash changes whenever a stash entry is pushed.
const StashRef = "refs/stash"

// stashUntrackedRef is the third parent of a stash entry. It holds the
// untracked (and with --all the ignored) files and only exists when the
// entry captured any.
const stashUntrackedRef = StashRef + "^3"

// SaveOptions selects what a keep-index stash captures besides unstaged
// modifications of tracked files.
type SaveOptions struct {
	IncludeUntracked bool // untracked files
	IncludeAll       bool // untracked and ignored files
}

// StashSave stashes everything that is not staged, leaving the index (and
// therefore the content about to be committed) in the work tree.
// On a clean tree git creates no entry and still exits 0.
func StashSave(ctx context.Context, dir string, opts SaveOptions) error {
	args := []string{"stash", "save", "--quiet", "--keep-index"}
	// --all implies --include-untracked; git lets the last of the two win
	switch {
	case opts.IncludeAll:
		args = append(args, "--all")
	case opts.IncludeUntracked:
		args = append(args, "--include-untracked")
	}
	args = append(args, StashLabel)

	if err := runGitInherit(ctx, dir, args...); err != nil {
		return fmt.Errorf("failed to stash changes: %v", err)
	}
	return nil
}

// StashPop applies and removes the most recent stash entry.
// Git's output is passed through: a failed pop must be visible.
func StashPop(ctx context.Context, dir string) error {
	if err := runGitInherit(ctx, dir, "stash", "pop", "--quiet"); err != nil {
		return fmt.Errorf("failed to pop stash: %v", err)
	}
	return nil
}

// StashedUntracked lists the files stored in the untracked part of the most
// recent stash entry, relative to the work tree root at dir.
func StashedUntracked(ctx context.Context, dir string) ([]string, error) {
	hash, err := ObjectHash(ctx, dir, stashUntrackedRef)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", stashUntrackedRef, err)
	}
	if hash == "" {
		return nil, nil
	}

	output, err := outputGit(ctx, dir, "ls-tree", "-r", "-z", "--name-only", hash)
	if err != nil {
		return nil, fmt.Errorf("failed to list stashed untracked files: %v", err)
	}

	var paths []string
	for _, p := range strings.Split(string(output), "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// RemoveFiles deletes paths, relative to dir, from the work tree. Paths that
// don't exist are skipped.
func RemoveFiles(dir string, paths []string) error {
	var errs []error
	for _, p := range paths {
		err := os.Remove(filepath.Join(dir, filepath.FromSlash(p)))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Clean removes untracked files and directories, and ignored files too when
// ignored is true.
func Clean(ctx context.Context, dir string, ignored bool) error {
	args := []string{"clean", "-d", "--force", "--quiet"}
	if ignored {
		args = append(args, "-x")
	}
	if err := runGitInherit(ctx, dir, args...); err != nil {
		return fmt.Errorf("failed to clean work tree: %v", err)
	}
	return nil
}

// ResetHard discards modifications of tracked files.
func ResetHard(ctx context.Context, dir string) error {
	if err := runGitInherit(ctx, dir, "reset", "--hard", "--quiet"); err != nil {
		return fmt.Errorf("failed to reset work tree: %v", err)
	}
	return nil
}

// Repo binds the stash operations to one work tree.
type Repo struct {
	Path string
}

// ObjectHash resolves name in the repo. See [ObjectHash].
func (r Repo) ObjectHash(ctx context.Context, name string) (string, error) {
	return ObjectHash(ctx, r.Path, name)
}

// StashSave see [StashSave].
func (r Repo) StashSave(ctx context.Context, opts SaveOptions) error {
	return StashSave(ctx, r.Path, opts)
}

// StashPop see [StashPop].
func (r Repo) StashPop(ctx context.Context) error {
	return StashPop(ctx, r.Path)
}

// StashedUntracked see [StashedUntracked].
func (r Repo) StashedUntracked(ctx context.Context) ([]string, error) {
	return StashedUntracked(ctx, r.Path)
}

// RemoveFiles see [RemoveFiles].
func (r Repo) RemoveFiles(paths []string) error {
	return RemoveFiles(r.Path, paths)
}

// Clean see [Clean].
func (r Repo) Clean(ctx context.Context, ignored bool) error {
	return Clean(ctx, r.Path, ignored)
}

// ResetHard see [ResetHard].
func (r Repo) ResetHard(ctx context.Context) error {
	return ResetHard(ctx, r.Path)
}
