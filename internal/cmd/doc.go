// Package cmd runs external processes for precommit.
//
// Two stream modes exist. [Buffered] captures stdout and stderr for callers
// that parse output (git rev-parse, git status). [Inherit] connects the child
// to the parent's terminal so that scripts and user-facing git commands keep
// their colors and any prompts reach the user.
//
// A command that starts and exits non-zero is not an error at the [Executor]
// level; the exit status is part of the [Result]. Only failing to start the
// binary yields a [*SpawnError]. The helpers [RunContext], [OutputContext] and
// [RunInherit] convert non-zero exits to [*ExitError], carrying stderr as the
// message for buffered commands.
//
// There is no per-command timeout: a started process runs to completion.
// A context that is already done prevents the start.
package cmd
