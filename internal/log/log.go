// Package log provides context-aware logging for precommit.
//
// All diagnostics go to stderr. When a tag is set every line is prefixed with
// it, so hook output stays attributable inside the noisy output of git commit.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Tag is the prefix written in front of every hook message.
const Tag = "pre-commit:"

var tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))

type ctxKey struct{}

// Logger provides output and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	prefix  string
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Tagged returns a copy of l that prefixes every line with [Tag].
// The tag is colored only when color is true; colored output passes through a
// colorprofile writer so NO_COLOR and limited terminals are respected.
func (l *Logger) Tagged(color bool) *Logger {
	c := *l
	c.prefix = Tag + " "
	if color {
		c.prefix = tagStyle.Render(Tag) + " "
		c.out = &colorprofile.Writer{Forward: l.out, Profile: colorprofile.Detect(l.out, os.Environ())}
	}
	return &c
}

// Silenced returns a copy of l with quiet set when silent is true.
func (l *Logger) Silenced(silent bool) *Logger {
	c := *l
	c.quiet = l.quiet || silent
	return &c
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	l.write(fmt.Sprintln(args...))
}

// Message writes a multi-line block framed by empty tagged lines.
func (l *Logger) Message(text string) {
	if l.quiet {
		return
	}
	lines := append([]string{""}, strings.Split(text, "\n")...)
	lines = append(lines, "")
	for _, line := range lines {
		fmt.Fprintln(l.out, strings.TrimRight(l.prefix+line, " "))
	}
}

// Debug writes a message with key/value pairs in verbose mode.
// A trailing key without value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	l.write(b.String() + "\n")
}

// Command logs an external command execution.
// Only prints when verbose mode is enabled. The returned function records
// how long the command took.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		l.write(fmt.Sprintf("%s (%s)\n", line, d.Round(time.Millisecond)))
	}
}

// IsVerbose reports whether verbose output is enabled and not silenced.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// write prefixes each line of s with the tag, if any.
func (l *Logger) write(s string) {
	if l.prefix == "" {
		io.WriteString(l.out, s)
		return
	}
	trailing := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.prefix + line)
	}
	if trailing {
		b.WriteByte('\n')
	}
	io.WriteString(l.out, b.String())
}

// ColorEnabled reports whether tagged output to f should be colored.
// setting is the "colors" config value; nil means unset.
func ColorEnabled(f *os.File, setting *bool) bool {
	if setting != nil && !*setting {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
