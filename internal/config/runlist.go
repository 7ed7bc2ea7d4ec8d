package config

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var runSeparator = regexp.MustCompile(`[,\s]+`)

// runList is the ordered list of scripts to run. In both file formats it may
// be written as an array or as a single comma or whitespace separated string.
type runList []string

// splitRun splits "lint, test" style strings and drops empty entries.
func splitRun(s string) []string {
	var out []string
	for _, part := range runSeparator.Split(strings.TrimSpace(s), -1) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *runList) set(data any) error {
	switch v := data.(type) {
	case string:
		*r = splitRun(v)
	case []string:
		*r = append(runList(nil), v...)
	case []any:
		list := make(runList, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("run[%d] must be a string, got %T", i, item)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				return fmt.Errorf("run[%d] must not be empty", i)
			}
			list = append(list, s)
		}
		*r = list
	default:
		return fmt.Errorf("run must be a list or a string, got %T", data)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *runList) UnmarshalTOML(data any) error {
	return r.set(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *runList) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return r.set(v)
}
