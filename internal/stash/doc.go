// Package stash isolates the content staged for commit while hook scripts
// run.
//
// Setup runs a keep-index stash so the work tree matches the index; only
// what is about to be committed is visible to the scripts. Cleanup restores
// the previous state:
//
//	reset --hard   (stash.reset)
//	clean -d -f    (stash.clean, plus -x with include_all)
//	stash pop      (only if Setup created an entry)
//
// A pre-existing stash is never popped: the controller compares the hash of
// refs/stash around the save and only pops what it pushed.
package stash
