package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the hook's own config file in the repository root.
const FileName = ".precommit.toml"

// rawFile is used for TOML decoding; presence is checked through the
// metadata so unset keys don't override package.json.
type rawFile struct {
	Run      runList            `toml:"run"`
	Stash    Stash              `toml:"stash"`
	Silent   bool               `toml:"silent"`
	Colors   bool               `toml:"colors"`
	Template string             `toml:"template"`
	Runner   string             `toml:"runner"`
	Scripts  map[string]Command `toml:"scripts"`
}

// loadFile reads .precommit.toml from root.
// Returns nil (no error) if the file doesn't exist.
func loadFile(root string) (*layer, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	l, err := parseFile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	l.source = path
	return l, nil
}

func parseFile(data []byte) (*layer, error) {
	var raw rawFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	l := &layer{}
	if md.IsDefined("run") {
		run := []string(raw.Run)
		l.run = &run
	}
	if md.IsDefined("stash") {
		l.stash = &raw.Stash
	}
	if md.IsDefined("silent") {
		l.silent = &raw.Silent
	}
	if md.IsDefined("colors") {
		l.colors = &raw.Colors
	}
	if md.IsDefined("template") {
		l.template = &raw.Template
	}
	if md.IsDefined("runner") {
		l.runner = &raw.Runner
	}

	for name, c := range raw.Scripts {
		if strings.TrimSpace(c.Command) == "" {
			return nil, fmt.Errorf("scripts.%s: command must not be empty", name)
		}
	}
	if len(raw.Scripts) > 0 {
		l.commands = raw.Scripts
	}

	return l, nil
}

// fileView is the TOML shape written by [Config.WriteTOML].
type fileView struct {
	Run      []string           `toml:"run"`
	Stash    any                `toml:"stash"` // false or stashView
	Silent   bool               `toml:"silent"`
	Colors   *bool              `toml:"colors,omitempty"`
	Template string             `toml:"template,omitempty"`
	Runner   string             `toml:"runner"`
	Scripts  map[string]Command `toml:"scripts,omitempty"`
}

type stashView struct {
	IncludeAll       bool `toml:"include_all"`
	IncludeUntracked bool `toml:"include_untracked"`
	Reset            bool `toml:"reset"`
	Clean            bool `toml:"clean"`
}

// WriteTOML writes the resolved configuration in .precommit.toml syntax.
func (c *Config) WriteTOML(w io.Writer) error {
	view := fileView{
		Run:      c.Run,
		Stash:    false,
		Silent:   c.Silent,
		Colors:   c.Colors,
		Template: c.Template,
		Runner:   c.Runner,
		Scripts:  c.Commands,
	}
	if view.Run == nil {
		view.Run = []string{}
	}
	if c.Stash.Enabled() {
		view.Stash = stashView{
			IncludeAll:       c.Stash.IncludeAll,
			IncludeUntracked: c.Stash.IncludeUntracked,
			Reset:            c.Stash.ShouldReset(),
			Clean:            c.Stash.ShouldClean(),
		}
	}
	return toml.NewEncoder(w).Encode(view)
}

// Save writes c to .precommit.toml in root, replacing any existing file.
// Returns the path written.
func (c *Config) Save(root string) (string, error) {
	var buf bytes.Buffer
	if err := c.WriteTOML(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
