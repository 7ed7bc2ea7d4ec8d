// Package config resolves the pre-commit hook configuration of a repository.
//
// # Configuration Sources (highest priority first)
//
//   - PRECOMMIT_RUNNER env var: runner binary for package scripts
//   - .precommit.toml in the repository root
//   - package.json in the repository root
//   - Default values
//
// Either file may be absent; [Load] returns [ErrNoConfig] when both are.
//
// # .precommit.toml
//
//	run = ["lint", "test"]     # or "lint, test"
//	runner = "npm"             # <runner> run <script> --silent
//	template = ".gitmessage"   # sets commit.template
//	silent = false
//	colors = true
//
//	[stash]                    # or: stash = true
//	include_untracked = true
//	include_all = false
//	reset = true
//	clean = true
//
//	[scripts.vet]
//	command = "go vet ./..."
//	description = "Vet Go packages"
//
// Scripts defined under [scripts.NAME] run as "sh -c <command>"; every other
// name in run is handed to the runner.
//
// # package.json
//
// The "pre-commit" (or "precommit") key holds either the run list or an
// object with run, silent, colors, template and stash (includeAll,
// includeUntracked, reset, clean). Each flag is resolved once with the
// precedence: hook object > "precommit.<flag>" > "pre-commit.<flag>".
// Without a run list, a real "test" script is run.
//
// # Stash Variant
//
// [Stash] is a tagged value with three cases: [StashDisabled],
// [StashEnabled] and [StashWithCleanup]. Build it with [NoStash],
// [StashOnly] or [StashAndCleanup].
package config
