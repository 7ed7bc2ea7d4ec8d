package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Runner != DefaultRunner {
		t.Errorf("Runner = %q, want %q", cfg.Runner, DefaultRunner)
	}
	if cfg.Stash.Enabled() {
		t.Error("stash should be disabled by default")
	}
	if len(cfg.Run) != 0 {
		t.Errorf("Run = %v, want empty", cfg.Run)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load = %v, want ErrNoConfig", err)
	}
}

func TestLoad_InvalidPackageJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, PackageFileName, "{ not json")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load with invalid package.json should fail")
	}
	if errors.Is(err, ErrNoConfig) {
		t.Error("parse failure should not be reported as ErrNoConfig")
	}
	if !strings.Contains(err.Error(), PackageFileName) {
		t.Errorf("error %q should name the file", err)
	}
}

func TestParsePackageJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		json       string
		wantRun    []string
		wantStash  Stash
		wantSilent bool
		wantColors *bool
		wantTmpl   string
	}{
		{
			name:    "array under pre-commit",
			json:    `{"pre-commit": ["lint", "test"]}`,
			wantRun: []string{"lint", "test"},
		},
		{
			name:    "array under precommit",
			json:    `{"precommit": ["lint"]}`,
			wantRun: []string{"lint"},
		},
		{
			name:    "string split on commas and spaces",
			json:    `{"pre-commit": "lint, test  build"}`,
			wantRun: []string{"lint", "test", "build"},
		},
		{
			name:    "string split on tabs and newlines",
			json:    `{"pre-commit": "lint\ttest\n build,\r\ncheck"}`,
			wantRun: []string{"lint", "test", "build", "check"},
		},
		{
			name:    "object with run string",
			json:    `{"pre-commit": {"run": "lint,test"}}`,
			wantRun: []string{"lint", "test"},
		},
		{
			name:      "object with stash true",
			json:      `{"pre-commit": {"run": ["lint"], "stash": true}}`,
			wantRun:   []string{"lint"},
			wantStash: StashOnly(false, false),
		},
		{
			name:      "object with stash options",
			json:      `{"pre-commit": {"run": ["lint"], "stash": {"includeUntracked": true, "clean": true}}}`,
			wantRun:   []string{"lint"},
			wantStash: StashAndCleanup(false, true, false, true),
		},
		{
			name:       "legacy dotted keys",
			json:       `{"pre-commit": ["lint"], "precommit.silent": true, "precommit.colors": false, "precommit.template": ".msg"}`,
			wantRun:    []string{"lint"},
			wantSilent: true,
			wantColors: ptr(false),
			wantTmpl:   ".msg",
		},
		{
			name:       "legacy prefixed keys",
			json:       `{"pre-commit": ["lint"], "pre-commit.silent": true}`,
			wantRun:    []string{"lint"},
			wantSilent: true,
		},
		{
			name:     "object beats dotted beats prefixed",
			json:     `{"pre-commit": {"run": ["a"], "template": "object"}, "precommit.template": "dotted", "pre-commit.template": "prefixed"}`,
			wantRun:  []string{"a"},
			wantTmpl: "object",
		},
		{
			name:     "dotted beats prefixed",
			json:     `{"pre-commit": ["a"], "precommit.template": "dotted", "pre-commit.template": "prefixed"}`,
			wantRun:  []string{"a"},
			wantTmpl: "dotted",
		},
		{
			name:      "legacy stash key",
			json:      `{"pre-commit": ["a"], "pre-commit.stash": {"reset": true}}`,
			wantRun:   []string{"a"},
			wantStash: StashAndCleanup(false, false, true, false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := parsePackageJSON([]byte(tt.json))
			if err != nil {
				t.Fatalf("parsePackageJSON failed: %v", err)
			}
			cfg := merge(Default(), l)

			if !slices.Equal(cfg.Run, tt.wantRun) {
				t.Errorf("Run = %v, want %v", cfg.Run, tt.wantRun)
			}
			if cfg.Stash != tt.wantStash {
				t.Errorf("Stash = %v, want %v", cfg.Stash, tt.wantStash)
			}
			if cfg.Silent != tt.wantSilent {
				t.Errorf("Silent = %v, want %v", cfg.Silent, tt.wantSilent)
			}
			if (cfg.Colors == nil) != (tt.wantColors == nil) || (cfg.Colors != nil && *cfg.Colors != *tt.wantColors) {
				t.Errorf("Colors = %v, want %v", cfg.Colors, tt.wantColors)
			}
			if cfg.Template != tt.wantTmpl {
				t.Errorf("Template = %q, want %q", cfg.Template, tt.wantTmpl)
			}
		})
	}
}

func TestParsePackageJSON_TestFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		json    string
		wantRun []string
	}{
		{
			name:    "test script used without run list",
			json:    `{"scripts": {"test": "go test ./..."}}`,
			wantRun: []string{"test"},
		},
		{
			name:    "npm placeholder ignored",
			json:    `{"scripts": {"test": "echo \"Error: no test specified\" && exit 1"}}`,
			wantRun: nil,
		},
		{
			name:    "explicit empty list wins",
			json:    `{"scripts": {"test": "go test ./..."}, "pre-commit": []}`,
			wantRun: []string{},
		},
		{
			name:    "no scripts",
			json:    `{"name": "x"}`,
			wantRun: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := parsePackageJSON([]byte(tt.json))
			if err != nil {
				t.Fatalf("parsePackageJSON failed: %v", err)
			}
			cfg := merge(Default(), l)
			if len(cfg.Run) != len(tt.wantRun) || !slices.Equal(cfg.Run, tt.wantRun) {
				t.Errorf("Run = %#v, want %#v", cfg.Run, tt.wantRun)
			}
		})
	}
}

func TestParsePackageJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
	}{
		{"stash wrong type", `{"pre-commit": {"stash": "yes"}}`},
		{"unknown stash key", `{"pre-commit": {"stash": {"includeEverything": true}}}`},
		{"stash option not bool", `{"pre-commit": {"stash": {"reset": "true"}}}`},
		{"run entry not string", `{"pre-commit": [1, 2]}`},
		{"silent not bool", `{"pre-commit": {"silent": "no"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parsePackageJSON([]byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	data := `
run = "vet, test"
runner = "pnpm"
template = ".gitmessage"
silent = true
colors = false

[stash]
include_all = true
reset = true

[scripts.vet]
command = "go vet ./..."
description = "Vet packages"
`
	l, err := parseFile([]byte(data))
	if err != nil {
		t.Fatalf("parseFile failed: %v", err)
	}
	cfg := merge(Default(), l)

	if want := []string{"vet", "test"}; !slices.Equal(cfg.Run, want) {
		t.Errorf("Run = %v, want %v", cfg.Run, want)
	}
	if cfg.Runner != "pnpm" {
		t.Errorf("Runner = %q, want pnpm", cfg.Runner)
	}
	if cfg.Template != ".gitmessage" {
		t.Errorf("Template = %q", cfg.Template)
	}
	if !cfg.Silent {
		t.Error("Silent = false, want true")
	}
	if cfg.Colors == nil || *cfg.Colors {
		t.Errorf("Colors = %v, want false", cfg.Colors)
	}
	if want := StashAndCleanup(true, false, true, false); cfg.Stash != want {
		t.Errorf("Stash = %v, want %v", cfg.Stash, want)
	}
	if got := cfg.Commands["vet"]; got.Command != "go vet ./..." || got.Description != "Vet packages" {
		t.Errorf("Commands[vet] = %+v", got)
	}
}

func TestParseFile_StashBool(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		data string
		want Stash
	}{
		{"stash = true", StashOnly(false, false)},
		{"stash = false", NoStash()},
	} {
		l, err := parseFile([]byte(tt.data))
		if err != nil {
			t.Fatalf("parseFile(%q) failed: %v", tt.data, err)
		}
		if got := merge(Default(), l).Stash; got != tt.want {
			t.Errorf("parseFile(%q).Stash = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestParseFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"invalid toml", "run = ["},
		{"unknown stash key", "[stash]\nkeep = true"},
		{"stash string", `stash = "yes"`},
		{"empty command", "[scripts.lint]\ncommand = \"\""},
		{"empty run entry", `run = ["lint", ""]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseFile([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_FileOverridesPackageJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, PackageFileName, `{
  "scripts": {"lint": "eslint .", "test": "jest"},
  "pre-commit": {"run": ["lint", "test"], "silent": true, "template": ".pkgmsg"}
}`)
	writeConfigFile(t, dir, FileName, `
run = ["test"]
[stash]
clean = true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []string{"test"}; !slices.Equal(cfg.Run, want) {
		t.Errorf("Run = %v, want %v", cfg.Run, want)
	}
	if !cfg.Silent {
		t.Error("Silent from package.json should survive when the file doesn't set it")
	}
	if cfg.Template != ".pkgmsg" {
		t.Errorf("Template = %q, want .pkgmsg", cfg.Template)
	}
	if !cfg.Stash.ShouldClean() {
		t.Errorf("Stash = %v, want clean", cfg.Stash)
	}
	if len(cfg.Sources) != 2 {
		t.Errorf("Sources = %v, want both files", cfg.Sources)
	}
	if cfg.PackageScripts["lint"] != "eslint ." {
		t.Errorf("PackageScripts = %v", cfg.PackageScripts)
	}
}

func TestLoad_FileOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, FileName, `
run = ["vet"]
[scripts.vet]
command = "go vet ./..."
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NeedsRunner() {
		t.Error("NeedsRunner = true, want false when every script is a command")
	}
	if len(cfg.Undefined()) != 0 {
		t.Errorf("Undefined = %v, want none", cfg.Undefined())
	}
}

func TestLoad_RunnerEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, FileName, `runner = "yarn"`)
	t.Setenv(RunnerEnvVar, "bun")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Runner != "bun" {
		t.Errorf("Runner = %q, want bun", cfg.Runner)
	}
}

func TestConfig_ScriptQueries(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Run:            []string{"vet", "lint", "tset"},
		Commands:       map[string]Command{"vet": {Command: "go vet ./..."}},
		PackageScripts: map[string]string{"lint": "eslint .", "test": "jest"},
	}

	if !cfg.NeedsRunner() {
		t.Error("NeedsRunner = false, want true")
	}
	if !cfg.IsDefined("vet") || !cfg.IsDefined("lint") || cfg.IsDefined("tset") {
		t.Error("IsDefined gave wrong answers")
	}
	if got := cfg.Undefined(); !slices.Equal(got, []string{"tset"}) {
		t.Errorf("Undefined = %v, want [tset]", got)
	}
	if got := cfg.KnownScripts(); !slices.Equal(got, []string{"lint", "test", "vet"}) {
		t.Errorf("KnownScripts = %v", got)
	}
}

func TestConfig_UndefinedWithoutPackageJSON(t *testing.T) {
	t.Parallel()

	// Without package.json nothing can be said about runner scripts
	cfg := Config{Run: []string{"lint"}}
	if got := cfg.Undefined(); len(got) != 0 {
		t.Errorf("Undefined = %v, want none", got)
	}
}

func TestWriteTOML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Run = []string{"vet", "test"}
	cfg.Stash = StashAndCleanup(false, true, true, false)
	cfg.Template = ".gitmessage"
	cfg.Commands = map[string]Command{"vet": {Command: "go vet ./...", Description: "Vet"}}

	var buf bytes.Buffer
	if err := cfg.WriteTOML(&buf); err != nil {
		t.Fatalf("WriteTOML failed: %v", err)
	}

	l, err := parseFile(buf.Bytes())
	if err != nil {
		t.Fatalf("written config does not parse: %v\n%s", err, buf.String())
	}
	got := merge(Default(), l)
	if !slices.Equal(got.Run, cfg.Run) || got.Stash != cfg.Stash || got.Template != cfg.Template {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
	if got.Commands["vet"] != cfg.Commands["vet"] {
		t.Errorf("Commands = %v", got.Commands)
	}
}

func TestWriteTOML_DisabledStash(t *testing.T) {
	t.Parallel()

	cfg := Default()
	var buf bytes.Buffer
	if err := cfg.WriteTOML(&buf); err != nil {
		t.Fatalf("WriteTOML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "stash = false") {
		t.Errorf("output = %q, want stash = false", buf.String())
	}
}

func TestSave(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeConfigFile(t, root, FileName, "run = [\"old\"]\n")

	cfg := Default()
	cfg.Run = []string{"lint"}
	cfg.Stash = StashOnly(false, false)

	path, err := cfg.Save(root)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("path = %q", path)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(got.Run, []string{"lint"}) || !got.Stash.Enabled() {
		t.Errorf("reloaded = %+v, want run [lint] with stash", got)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	got := Suggest("lnt", []string{"build", "lint", "lint:fix", "test"})
	if len(got) == 0 || got[0] != "lint" {
		t.Errorf("Suggest(lnt) = %v, want lint first", got)
	}
	if got := Suggest("zzz", []string{"lint"}); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
	many := Suggest("t", []string{"t1", "t2", "t3", "t4"})
	if len(many) != maxSuggestions {
		t.Errorf("Suggest returned %d, want at most %d", len(many), maxSuggestions)
	}
}

func ptr[T any](v T) *T { return &v }
