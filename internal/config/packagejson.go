package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PackageFileName is the npm manifest read from the repository root.
const PackageFileName = "package.json"

// npmPlaceholderTest is the test script npm init writes; it always fails.
const npmPlaceholderTest = `echo "Error: no test specified" && exit 1`

// hookKeys are the package.json keys holding the hook configuration, in
// lookup order.
var hookKeys = []string{"pre-commit", "precommit"}

// packageFlags are the options that may also be set with legacy top-level
// "precommit.<flag>" / "pre-commit.<flag>" keys.
var packageFlags = []string{"silent", "colors", "template", "stash"}

// loadPackageJSON reads package.json from root.
// Returns nil (no error) if the file doesn't exist.
func loadPackageJSON(root string) (*layer, error) {
	path := filepath.Join(root, PackageFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	l, err := parsePackageJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	l.source = path
	return l, nil
}

// parsePackageJSON resolves the hook configuration of a manifest.
//
// The hook key holds either the run list (array or string) or an object.
// Each flag is taken from, highest precedence first: the hook object, the
// "precommit.<flag>" key, the "pre-commit.<flag>" key.
func parsePackageJSON(data []byte) (*layer, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	l := &layer{packageScripts: map[string]string{}}
	if scripts, ok := raw["scripts"]; ok {
		if err := json.Unmarshal(scripts, &l.packageScripts); err != nil {
			return nil, fmt.Errorf("scripts: %w", err)
		}
	}

	hook := hookValue(raw)
	options := map[string]json.RawMessage{}
	if isJSONObject(hook) {
		if err := json.Unmarshal(hook, &options); err != nil {
			return nil, err
		}
	}

	// run: the object's "run", else the hook value itself when it's a list/string
	runValue, ok := options["run"]
	if !ok && (isJSONArray(hook) || isJSONString(hook)) {
		runValue, ok = hook, true
	}
	if ok {
		var run runList
		if err := json.Unmarshal(runValue, &run); err != nil {
			return nil, fmt.Errorf("run: %w", err)
		}
		list := []string(run)
		l.run = &list
	}

	for _, flag := range packageFlags {
		value, ok := lookupFlag(raw, options, flag)
		if !ok {
			continue
		}
		if err := l.setFlag(flag, value); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// hookValue returns the first hook key that holds a value.
func hookValue(raw map[string]json.RawMessage) json.RawMessage {
	for _, key := range hookKeys {
		if v, ok := raw[key]; ok && !isJSONNull(v) {
			return v
		}
	}
	return nil
}

func lookupFlag(raw, options map[string]json.RawMessage, flag string) (json.RawMessage, bool) {
	if v, ok := options[flag]; ok {
		return v, true
	}
	for _, key := range []string{"precommit." + flag, "pre-commit." + flag} {
		if v, ok := raw[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (l *layer) setFlag(flag string, value json.RawMessage) error {
	var err error
	switch flag {
	case "silent":
		l.silent = new(bool)
		err = json.Unmarshal(value, l.silent)
	case "colors":
		l.colors = new(bool)
		err = json.Unmarshal(value, l.colors)
	case "template":
		l.template = new(string)
		err = json.Unmarshal(value, l.template)
	case "stash":
		l.stash = new(Stash)
		err = json.Unmarshal(value, l.stash)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", flag, err)
	}
	return nil
}

func firstByte(v json.RawMessage) byte {
	for _, b := range v {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

func isJSONObject(v json.RawMessage) bool { return firstByte(v) == '{' }
func isJSONArray(v json.RawMessage) bool  { return firstByte(v) == '[' }
func isJSONString(v json.RawMessage) bool { return firstByte(v) == '"' }
func isJSONNull(v json.RawMessage) bool   { return firstByte(v) == 'n' }
