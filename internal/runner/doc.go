// Package runner drives a pre-commit hook invocation.
//
// [Bootstrap] decides whether the hook should run (git available, inside a
// repository, configuration readable, something to commit, something to
// run). Every reason not to run is a [SkipError]; a skipped hook never
// blocks the commit.
//
// An [Orchestrator] then moves through
//
//	Idle -> SettingUp -> Running -> CleaningUp -> Done
//
// and returns an [Outcome]. Only [ScriptFailure] produces a non-zero exit
// code. Setup and cleanup problems are reported but let the commit through.
package runner
