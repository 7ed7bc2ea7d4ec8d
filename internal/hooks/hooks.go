package hooks

import (
	"context"
	"fmt"

	"github.com/raphi011/precommit/internal/cmd"
	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/log"
)

// ScriptError reports the first script that did not succeed.
type ScriptError struct {
	Script   string
	ExitCode int   // always >= 1
	Err      error // set if the script could not be started
}

func (e *ScriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("script %q could not be started: %v", e.Script, e.Err)
	}
	return fmt.Sprintf("script %q exited with status %d", e.Script, e.ExitCode)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// Resolver maps a script name to the command that runs it.
type Resolver interface {
	Resolve(script string) (name string, args []string)
}

// ScriptResolver resolves names defined in [config.Config.Commands] to a
// shell invocation and everything else to a package script run.
type ScriptResolver struct {
	Runner   string
	Commands map[string]config.Command
}

// NewResolver returns the resolver for cfg.
func NewResolver(cfg config.Config) ScriptResolver {
	return ScriptResolver{Runner: cfg.Runner, Commands: cfg.Commands}
}

// Resolve implements [Resolver].
func (r ScriptResolver) Resolve(script string) (string, []string) {
	if c, ok := r.Commands[script]; ok {
		return "sh", []string{"-c", c.Command}
	}
	runner := r.Runner
	if runner == "" {
		runner = config.DefaultRunner
	}
	return runner, []string{"run", script, "--silent"}
}

// Pipeline runs scripts one after another in the repository root.
type Pipeline struct {
	exec     cmd.Executor
	dir      string
	resolver Resolver
}

// New creates a pipeline running scripts in dir.
func New(exec cmd.Executor, dir string, resolver Resolver) *Pipeline {
	return &Pipeline{exec: exec, dir: dir, resolver: resolver}
}

// RunAll runs scripts in order and stops at the first one that fails.
// Scripts inherit the terminal so their output and colors reach the user
// unchanged. Returns *ScriptError on failure.
func (p *Pipeline) RunAll(ctx context.Context, scripts []string) error {
	l := log.FromContext(ctx)

	for _, script := range scripts {
		name, args := p.resolver.Resolve(script)
		l.Debug("running script", "script", script, "dir", p.dir)

		res, err := p.exec.Exec(ctx, name, args, cmd.Options{Dir: p.dir, Mode: cmd.Inherit})
		if err != nil {
			return &ScriptError{Script: script, ExitCode: 1, Err: err}
		}
		if res.ExitCode != 0 {
			return &ScriptError{Script: script, ExitCode: max(res.ExitCode, 1)}
		}
	}
	return nil
}
