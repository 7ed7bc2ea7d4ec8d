package config

import (
	"errors"
	"maps"
	"os"
	"slices"
)

// DefaultRunner runs package scripts when no runner is configured.
const DefaultRunner = "npm"

// RunnerEnvVar overrides the configured runner binary.
const RunnerEnvVar = "PRECOMMIT_RUNNER"

// ErrNoConfig is returned when neither configuration file exists.
var ErrNoConfig = errors.New("no " + PackageFileName + " or " + FileName + " found")

// Command is a script defined directly as a shell command.
type Command struct {
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// Config is the resolved hook configuration. It is produced once before the
// hook runs and is read-only afterwards.
type Config struct {
	Run      []string // scripts in execution order
	Stash    Stash
	Silent   bool
	Colors   *bool  // nil: color when stderr is a terminal
	Template string // commit.template to set before running
	Runner   string // binary for package scripts: <runner> run <script> --silent

	Commands       map[string]Command // [scripts.NAME] from .precommit.toml
	PackageScripts map[string]string  // "scripts" from package.json
	Sources        []string           // files that contributed, in load order
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Stash:  NoStash(),
		Runner: DefaultRunner,
	}
}

// Load reads the configuration of the repository rooted at root.
//
// .precommit.toml fields override package.json fields. Returns ErrNoConfig
// if neither file exists, and an error if a file exists but is invalid.
func Load(root string) (Config, error) {
	pkg, err := loadPackageJSON(root)
	if err != nil {
		return Default(), err
	}
	file, err := loadFile(root)
	if err != nil {
		return Default(), err
	}
	if pkg == nil && file == nil {
		return Default(), ErrNoConfig
	}

	cfg := merge(Default(), pkg, file)

	if runner := os.Getenv(RunnerEnvVar); runner != "" {
		cfg.Runner = runner
	}

	return cfg, nil
}

// IsCommand reports whether name is defined as a shell command.
func (c *Config) IsCommand(name string) bool {
	_, ok := c.Commands[name]
	return ok
}

// IsDefined reports whether name resolves to a command or a package script.
func (c *Config) IsDefined(name string) bool {
	if c.IsCommand(name) {
		return true
	}
	_, ok := c.PackageScripts[name]
	return ok
}

// NeedsRunner reports whether any script in Run is executed by the runner.
func (c *Config) NeedsRunner() bool {
	for _, name := range c.Run {
		if !c.IsCommand(name) {
			return true
		}
	}
	return false
}

// Undefined returns the scripts in Run that resolve to nothing known.
// Package scripts can only be checked when package.json was read.
func (c *Config) Undefined() []string {
	var missing []string
	for _, name := range c.Run {
		if c.IsCommand(name) {
			continue
		}
		if c.PackageScripts == nil {
			continue
		}
		if _, ok := c.PackageScripts[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// KnownScripts returns every script name that can be referenced in Run, sorted.
func (c *Config) KnownScripts() []string {
	names := slices.Collect(maps.Keys(c.Commands))
	for name := range c.PackageScripts {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
