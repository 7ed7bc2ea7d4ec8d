// Package cmd provides helpers for executing external commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/precommit/internal/log"
)

// Mode selects how a child's standard streams are wired.
type Mode int

const (
	// Buffered captures stdout and stderr so the caller can inspect them.
	Buffered Mode = iota
	// Inherit hands the parent's terminal to the child. The child sees the
	// same file descriptors, so its isatty checks (and colors) behave as if
	// it were run directly.
	Inherit
)

// Options configures a single execution.
type Options struct {
	Dir  string
	Mode Mode
}

// Result is the outcome of a command that was started.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// SpawnError reports a command that could not be started at all
// (binary not found, permission denied).
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports a command that ran but exited non-zero.
// For buffered commands the message is the trimmed stderr output.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s %s exited with status %d", e.Name, strings.Join(e.Args, " "), e.Code)
}

// Executor runs external commands.
type Executor interface {
	Exec(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// Process is the real Executor. Zero-value streams default to the
// process's own stdin, stdout and stderr.
type Process struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Default is the Executor used by the package-level helpers.
var Default Executor = &Process{}

// Exec runs name with args. It returns a Result for any exit status and an
// error only if the command could not be spawned or ctx was done before start.
func (p *Process) Exec(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	done := log.FromContext(ctx).Command(opts.Dir, name, args...)
	start := time.Now()
	defer func() { done(time.Since(start)) }()

	c := exec.Command(name, args...)
	c.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	switch opts.Mode {
	case Inherit:
		c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
		if p.Stdin != nil {
			c.Stdin = p.Stdin
		}
		if p.Stdout != nil {
			c.Stdout = p.Stdout
		}
		if p.Stderr != nil {
			c.Stderr = p.Stderr
		}
	default:
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	err := c.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode < 0 {
			// killed by a signal
			res.ExitCode = 1
		}
		return res, nil
	}
	return res, &SpawnError{Name: name, Err: err}
}

// RunContext executes a buffered command and returns stderr in the error
// message if it exits non-zero.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a buffered command and returns stdout, with stderr
// in the error if it exits non-zero.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	res, err := Default.Exec(ctx, name, args, Options{Dir: dir})
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExitError{Name: name, Args: args, Code: res.ExitCode, Stderr: strings.TrimSpace(string(res.Stderr))}
	}
	return res.Stdout, nil
}

// RunInherit executes a command attached to the terminal.
// Non-zero exits are returned as *ExitError.
func RunInherit(ctx context.Context, dir, name string, args ...string) error {
	res, err := Default.Exec(ctx, name, args, Options{Dir: dir, Mode: Inherit})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExitError{Name: name, Args: args, Code: res.ExitCode}
	}
	return nil
}
