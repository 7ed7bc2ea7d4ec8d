package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// StashMode is the tag of the [Stash] variant.
type StashMode int

const (
	// StashDisabled runs scripts against the work tree as it is.
	StashDisabled StashMode = iota
	// StashEnabled isolates the staged content and restores the tree afterwards.
	StashEnabled
	// StashWithCleanup is StashEnabled plus reset and/or clean before restoring.
	StashWithCleanup
)

func (m StashMode) String() string {
	switch m {
	case StashEnabled:
		return "enabled"
	case StashWithCleanup:
		return "enabled-with-cleanup"
	default:
		return "disabled"
	}
}

// Stash is the work tree isolation setting.
//
// IncludeAll and IncludeUntracked are only meaningful when Mode is not
// StashDisabled; Reset and Clean only when Mode is StashWithCleanup. Use the
// constructors to build consistent values.
type Stash struct {
	Mode             StashMode
	IncludeAll       bool // also stash (and clean) ignored files
	IncludeUntracked bool // also stash untracked files
	Reset            bool // git reset --hard before restoring
	Clean            bool // git clean before restoring
}

// NoStash returns the disabled variant.
func NoStash() Stash {
	return Stash{Mode: StashDisabled}
}

// StashOnly returns the enabled variant without cleanup steps.
func StashOnly(includeAll, includeUntracked bool) Stash {
	return Stash{Mode: StashEnabled, IncludeAll: includeAll, IncludeUntracked: includeUntracked}
}

// StashAndCleanup returns the enabled variant with cleanup steps. It
// degrades to [StashOnly] when neither reset nor clean is requested.
func StashAndCleanup(includeAll, includeUntracked, reset, clean bool) Stash {
	if !reset && !clean {
		return StashOnly(includeAll, includeUntracked)
	}
	return Stash{
		Mode:             StashWithCleanup,
		IncludeAll:       includeAll,
		IncludeUntracked: includeUntracked,
		Reset:            reset,
		Clean:            clean,
	}
}

// Enabled reports whether the work tree is isolated at all.
func (s Stash) Enabled() bool {
	return s.Mode != StashDisabled
}

// ShouldReset reports whether tracked changes are discarded before restoring.
func (s Stash) ShouldReset() bool {
	return s.Mode == StashWithCleanup && s.Reset
}

// ShouldClean reports whether untracked files are removed before restoring.
func (s Stash) ShouldClean() bool {
	return s.Mode == StashWithCleanup && s.Clean
}

func (s Stash) String() string {
	if !s.Enabled() {
		return s.Mode.String()
	}
	var opts []string
	if s.IncludeAll {
		opts = append(opts, "include_all")
	}
	if s.IncludeUntracked {
		opts = append(opts, "include_untracked")
	}
	if s.ShouldReset() {
		opts = append(opts, "reset")
	}
	if s.ShouldClean() {
		opts = append(opts, "clean")
	}
	if len(opts) == 0 {
		return s.Mode.String()
	}
	return s.Mode.String() + " (" + strings.Join(opts, ", ") + ")"
}

// stashKeys maps accepted option keys to their setter. TOML uses snake_case,
// package.json the camelCase spelling.
var stashKeys = map[string]func(*stashFlags, bool){
	"include_all":       func(f *stashFlags, v bool) { f.includeAll = v },
	"includeAll":        func(f *stashFlags, v bool) { f.includeAll = v },
	"include_untracked": func(f *stashFlags, v bool) { f.includeUntracked = v },
	"includeUntracked":  func(f *stashFlags, v bool) { f.includeUntracked = v },
	"reset":             func(f *stashFlags, v bool) { f.reset = v },
	"clean":             func(f *stashFlags, v bool) { f.clean = v },
}

type stashFlags struct {
	includeAll, includeUntracked, reset, clean bool
}

func (f stashFlags) stash() Stash {
	return StashAndCleanup(f.includeAll, f.includeUntracked, f.reset, f.clean)
}

// parseStashTable builds an enabled Stash from an option table.
// Unknown keys and non-boolean values are rejected.
func parseStashTable(table map[string]any) (Stash, error) {
	var flags stashFlags
	for key, value := range table {
		set, ok := stashKeys[key]
		if !ok {
			return Stash{}, fmt.Errorf("unknown stash option %q (valid: %s)", key, strings.Join(stashKeyNames(), ", "))
		}
		b, ok := value.(bool)
		if !ok {
			return Stash{}, fmt.Errorf("stash option %q must be a boolean, got %T", key, value)
		}
		set(&flags, b)
	}
	return flags.stash(), nil
}

func stashKeyNames() []string {
	names := make([]string, 0, len(stashKeys))
	for k := range stashKeys {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// UnmarshalTOML accepts `stash = true|false` or a [stash] table.
func (s *Stash) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case bool:
		if v {
			*s = StashOnly(false, false)
		} else {
			*s = NoStash()
		}
		return nil
	case map[string]any:
		parsed, err := parseStashTable(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("stash must be a boolean or a table, got %T", data)
	}
}

// UnmarshalJSON accepts `"stash": true|false` or an options object.
func (s *Stash) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*s = NoStash()
		return nil
	case bool, map[string]any:
		return s.UnmarshalTOML(v)
	default:
		return fmt.Errorf("stash must be a boolean or an object, got %s", strings.TrimSpace(string(data)))
	}
}
