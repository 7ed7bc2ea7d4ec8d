// Package git provides git operations via shell commands.
//
// All operations call the git CLI directly rather than using Go git
// libraries. This keeps behaviour identical to what the user gets at the
// terminal (hooks paths, aliases, config) and lets user-facing commands stream
// their output unmodified.
//
// # Repository Queries
//
//   - [TopLevel]: root of the work tree
//   - [Status]: porcelain status, empty when nothing changed
//   - [ObjectHash]: resolve a ref; "" when it does not exist
//   - [HooksDir]: hooks directory, honouring core.hooksPath
//
// # Work Tree Isolation
//
// The primitives used to run checks against exactly the staged content:
//
//   - [StashSave]: keep-index stash, optionally with untracked/ignored files
//   - [ResetHard], [Clean]: discard what checks left behind
//   - [StashPop]: restore the stashed state
//
// These attach to the terminal so git's messages reach the user verbatim.
// [Repo] binds them to a single work tree.
package git
