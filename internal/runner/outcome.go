package runner

import "fmt"

// Kind classifies how a hook run ended.
type Kind int

const (
	// Success means every script passed and the work tree was restored.
	Success Kind = iota
	// ScriptFailure means a script failed; the commit must be rejected.
	ScriptFailure
	// SetupFailure means the work tree could not be isolated. No script ran
	// and the commit is allowed.
	SetupFailure
	// CleanupFailure means every script passed but the work tree could not
	// be fully restored. The commit is allowed.
	CleanupFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ScriptFailure:
		return "script-failure"
	case SetupFailure:
		return "setup-failure"
	case CleanupFailure:
		return "cleanup-failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of [Orchestrator.Run].
type Outcome struct {
	Kind   Kind
	Script string // failing script, for ScriptFailure
	Code   int    // failing script's exit code, for ScriptFailure
	Cause  error  // script or setup error

	// CleanupErr is set when restoring the work tree failed. It accompanies
	// any Kind except SetupFailure and never changes the exit code.
	CleanupErr error

	// StashHeld reports that the hook's stash entry is still on the stack
	// after cleanup, so the user has to pop it.
	StashHeld bool
}

// ExitCode is the process exit code for the hook. Only a failed script
// rejects the commit.
func (o Outcome) ExitCode() int {
	if o.Kind != ScriptFailure {
		return 0
	}
	return max(o.Code, 1)
}

// Messages returns the user-facing diagnostics in the order they should be
// printed: cleanup problems first, then the reason the run ended.
func (o Outcome) Messages() []string {
	var msgs []string
	switch {
	case o.CleanupErr != nil && o.StashHeld:
		msgs = append(msgs, fmt.Sprintf(msgCleanup, o.CleanupErr))
	case o.CleanupErr != nil:
		msgs = append(msgs, fmt.Sprintf(msgRestore, o.CleanupErr))
	}
	switch o.Kind {
	case ScriptFailure:
		msgs = append(msgs, fmt.Sprintf(msgFailure, o.Script, o.ExitCode()))
	case SetupFailure:
		msgs = append(msgs, fmt.Sprintf(msgSetup, o.Cause))
	}
	return msgs
}
