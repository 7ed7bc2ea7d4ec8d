// Package install manages the repository's pre-commit hook file.
//
// The hook is a small shell shim that execs `precommit run`. It is written
// to the directory git reports for hooks, so core.hooksPath and linked
// worktrees are honoured. A hook that was not written by this package is
// moved aside to pre-commit.old on install and put back on uninstall.
package install
