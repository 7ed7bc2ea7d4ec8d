package runner

import (
	"context"
	"errors"

	"github.com/raphi011/precommit/internal/hooks"
	"github.com/raphi011/precommit/internal/log"
)

// Stasher isolates and restores the work tree. [stash.Controller]
// implements it. Stashed reports whether an entry created by Setup is
// still on the stash stack.
type Stasher interface {
	Setup(ctx context.Context) error
	Cleanup(ctx context.Context) error
	Stashed() bool
}

// Pipeline runs scripts in order. [hooks.Pipeline] implements it.
type Pipeline interface {
	RunAll(ctx context.Context, scripts []string) error
}

// State is the orchestrator's lifecycle position.
type State int

const (
	Idle State = iota
	SettingUp
	Running
	CleaningUp
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case SettingUp:
		return "setting-up"
	case Running:
		return "running"
	case CleaningUp:
		return "cleaning-up"
	default:
		return "done"
	}
}

// Orchestrator runs one hook invocation: setup, scripts, cleanup.
// It is single use.
type Orchestrator struct {
	scripts  []string
	stasher  Stasher
	pipeline Pipeline
	state    State
}

// New creates an orchestrator for scripts.
func New(scripts []string, stasher Stasher, pipeline Pipeline) *Orchestrator {
	return &Orchestrator{scripts: scripts, stasher: stasher, pipeline: pipeline}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the hook and reports how it ended.
//
// With no scripts nothing is touched. If setup fails no script runs and
// no cleanup is attempted. Otherwise cleanup always runs after the
// scripts, also when a script failed or panicked, and with a context that
// is not cancelled along with ctx: an interrupt that stopped a script must
// not leave the user's changes in the stash.
func (o *Orchestrator) Run(ctx context.Context) (out Outcome) {
	l := log.FromContext(ctx)

	if len(o.scripts) == 0 {
		o.state = Done
		return Outcome{Kind: Success}
	}

	o.transition(l, SettingUp)
	if err := o.stasher.Setup(ctx); err != nil {
		o.transition(l, Done)
		return Outcome{Kind: SetupFailure, Cause: err}
	}

	defer func() {
		o.transition(l, CleaningUp)
		if err := o.stasher.Cleanup(context.WithoutCancel(ctx)); err != nil {
			out.CleanupErr = err
			out.StashHeld = o.stasher.Stashed()
			if out.Kind == Success {
				out.Kind = CleanupFailure
			}
		}
		o.transition(l, Done)
	}()

	o.transition(l, Running)
	err := o.pipeline.RunAll(ctx, o.scripts)
	if err == nil {
		return Outcome{Kind: Success}
	}

	var scriptErr *hooks.ScriptError
	if errors.As(err, &scriptErr) {
		return Outcome{Kind: ScriptFailure, Script: scriptErr.Script, Code: scriptErr.ExitCode, Cause: err}
	}
	return Outcome{Kind: ScriptFailure, Code: 1, Cause: err}
}

func (o *Orchestrator) transition(l *log.Logger, s State) {
	l.Debug("hook state", "from", o.state, "to", s)
	o.state = s
}

// Report prints the outcome's diagnostics.
func Report(ctx context.Context, out Outcome) {
	l := log.FromContext(ctx)
	for _, msg := range out.Messages() {
		l.Message(msg)
	}
}
