package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf, false)
		ctx := WithPrinter(context.Background(), p)
		if got := FromContext(ctx); got != p {
			t.Error("FromContext did not return the stored printer")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false)

	p.Printf("scripts: %d", 2)
	if got := buf.String(); got != "scripts: 2" {
		t.Errorf("Printf() wrote %q, want %q", got, "scripts: 2")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false)

	p.Println("line one")
	p.Println("line two")
	want := "line one\nline two\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_HeadingAndCheck(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false)

	p.Heading("Environment")
	p.Check(true, "git found")
	p.Check(false, "npm missing")

	want := "Environment\n  ✓ git found\n  ✗ npm missing\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
