// Package output provides context-aware output for precommit.
// Stdout carries primary output (resolved config, doctor reports).
// Stderr (via log package) carries hook diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

type ctxKey struct{}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Printer writes primary output to stdout.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns an uncolored Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Heading writes a section title.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.w, p.style(headingStyle, title))
}

// Check writes a single pass/fail line.
func (p *Printer) Check(ok bool, text string) {
	mark := p.style(okStyle, "✓")
	if !ok {
		mark = p.style(failStyle, "✗")
	}
	fmt.Fprintf(p.w, "  %s %s\n", mark, text)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}
