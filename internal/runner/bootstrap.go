package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/precommit/internal/cmd"
	"github.com/raphi011/precommit/internal/config"
	"github.com/raphi011/precommit/internal/git"
	"github.com/raphi011/precommit/internal/hooks"
	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/stash"
)

// Reason says why the hook was skipped.
type Reason int

const (
	BinaryNotFound Reason = iota
	RepositoryDiscoveryFailure
	ConfigurationError
	NoChanges
	NothingToRun
)

func (r Reason) String() string {
	switch r {
	case BinaryNotFound:
		return "binary-not-found"
	case RepositoryDiscoveryFailure:
		return "repository-discovery-failure"
	case ConfigurationError:
		return "configuration-error"
	case NoChanges:
		return "no-changes"
	case NothingToRun:
		return "nothing-to-run"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// SkipError means the hook has nothing it can or should do. The commit
// proceeds; the message explains why.
type SkipError struct {
	Reason Reason
	Err    error
	msg    string
}

func (e *SkipError) Error() string { return e.msg }

func (e *SkipError) Unwrap() error { return e.Err }

func skip(reason Reason, err error, format string, args ...any) *SkipError {
	return &SkipError{Reason: reason, Err: err, msg: fmt.Sprintf(format, args...)}
}

// BootstrapOptions configures [Bootstrap]. Zero-value function fields use
// the real environment.
type BootstrapOptions struct {
	Dir          string // directory the hook was started in
	IgnoreStatus bool   // run even if git reports no changes

	LookPath func(file string) (string, error)
	Getenv   func(key string) string
	Setenv   func(key, value string) error
}

func (o *BootstrapOptions) defaults() {
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Setenv == nil {
		o.Setenv = os.Setenv
	}
}

// Session is a bootstrapped hook invocation, ready to run.
type Session struct {
	Root       string        // repository top level
	Status     string        // porcelain status at start
	Config     config.Config // resolved configuration
	RunnerPath string        // resolved runner binary, if any script needs it

	warnings []string
}

// Bootstrap discovers the repository and its configuration and decides
// whether the hook should run at all.
//
// A *SkipError is returned when it should not; the session is returned
// alongside it, populated as far as bootstrap got, so callers can honour
// the output settings of an already loaded configuration.
func Bootstrap(ctx context.Context, opts BootstrapOptions) (*Session, error) {
	opts.defaults()
	s := &Session{Config: config.Default()}

	if _, err := opts.LookPath("git"); err != nil {
		return s, skip(BinaryNotFound, err, msgBinary, "git")
	}

	root, err := git.TopLevel(ctx, opts.Dir)
	if err != nil {
		return s, skip(RepositoryDiscoveryFailure, err, msgRoot)
	}
	s.Root = root

	status, err := git.Status(ctx, root)
	if err != nil {
		return s, skip(RepositoryDiscoveryFailure, err, msgStatus)
	}
	s.Status = status

	cfg, err := config.Load(root)
	if err != nil {
		return s, skip(ConfigurationError, err, msgConfig, err)
	}
	s.Config = cfg

	if status == "" && !opts.IgnoreStatus {
		return s, skip(NoChanges, nil, msgEmpty)
	}

	// Applied before checking for scripts so it takes effect even when
	// nothing runs.
	if cfg.Template != "" {
		if err := git.SetConfig(ctx, root, "commit.template", cfg.Template); err != nil {
			s.warnings = append(s.warnings, err.Error())
		}
	}

	if len(cfg.Run) == 0 {
		return s, skip(NothingToRun, nil, msgNothing)
	}

	if cfg.NeedsRunner() {
		path, err := lookRunner(opts, cfg.Runner)
		if err != nil {
			return s, skip(BinaryNotFound, err, msgBinary, cfg.Runner)
		}
		s.RunnerPath = path
	}

	for _, name := range cfg.Undefined() {
		msg := fmt.Sprintf(msgUnknown, name)
		if alts := config.Suggest(name, cfg.KnownScripts()); len(alts) > 0 {
			msg += fmt.Sprintf(" Did you mean `%s`?", strings.Join(alts, "`, `"))
		}
		s.warnings = append(s.warnings, msg)
	}

	log.FromContext(ctx).Debug("bootstrapped", "root", root, "scripts", strings.Join(cfg.Run, ","), "stash", cfg.Stash)
	return s, nil
}

// lookRunner finds the runner binary. Git GUI clients often start hooks
// without the user's shell PATH, so on a miss the directory of the binary
// that started us ($_) is appended to PATH and the lookup retried once.
func lookRunner(opts BootstrapOptions, runner string) (string, error) {
	path, err := opts.LookPath(runner)
	if err == nil {
		return path, nil
	}

	starter := opts.Getenv("_")
	if starter == "" {
		return "", err
	}
	augmented := opts.Getenv("PATH") + string(os.PathListSeparator) + filepath.Dir(starter)
	if setErr := opts.Setenv("PATH", augmented); setErr != nil {
		return "", errors.Join(err, setErr)
	}
	return opts.LookPath(runner)
}

// Warnings returns non-fatal problems found during bootstrap, such as
// scripts that are not defined anywhere.
func (s *Session) Warnings() []string {
	return s.warnings
}

// Logger derives the hook logger from base using the session's silent and
// colors settings. stderr is checked for a terminal.
func (s *Session) Logger(base *log.Logger, stderr *os.File) *log.Logger {
	return base.Tagged(log.ColorEnabled(stderr, s.Config.Colors)).Silenced(s.Config.Silent)
}

// Orchestrator wires the stash controller and script pipeline for this
// session. executor runs the scripts; nil means [cmd.Default].
func (s *Session) Orchestrator(executor cmd.Executor) *Orchestrator {
	if executor == nil {
		executor = cmd.Default
	}
	cfg := s.Config
	if s.RunnerPath != "" {
		cfg.Runner = s.RunnerPath
	}
	return New(
		cfg.Run,
		stash.New(git.Repo{Path: s.Root}, cfg.Stash),
		hooks.New(executor, s.Root, hooks.NewResolver(cfg)),
	)
}
