package config

import "maps"

// layer is one configuration source. Nil pointers mean "not set here" so a
// later layer only overrides what it actually specifies.
type layer struct {
	source         string
	run            *[]string
	stash          *Stash
	silent         *bool
	colors         *bool
	template       *string
	runner         *string
	commands       map[string]Command
	packageScripts map[string]string
}

// merge applies layers over base in order, later layers winning per field.
// Nil layers are skipped.
func merge(base Config, layers ...*layer) Config {
	merged := base
	runSet := false

	for _, l := range layers {
		if l == nil {
			continue
		}
		merged.Sources = append(merged.Sources, l.source)

		if l.run != nil {
			merged.Run = append([]string(nil), (*l.run)...)
			runSet = true
		}
		if l.stash != nil {
			merged.Stash = *l.stash
		}
		if l.silent != nil {
			merged.Silent = *l.silent
		}
		if l.colors != nil {
			v := *l.colors
			merged.Colors = &v
		}
		if l.template != nil {
			merged.Template = *l.template
		}
		if l.runner != nil && *l.runner != "" {
			merged.Runner = *l.runner
		}
		if l.commands != nil {
			if merged.Commands == nil {
				merged.Commands = make(map[string]Command, len(l.commands))
			}
			maps.Copy(merged.Commands, l.commands)
		}
		if l.packageScripts != nil {
			merged.PackageScripts = maps.Clone(l.packageScripts)
		}
	}

	// Fall back to the package's test script, unless it is npm's placeholder.
	if !runSet {
		if test, ok := merged.PackageScripts["test"]; ok && test != npmPlaceholderTest {
			merged.Run = []string{"test"}
		}
	}

	return merged
}
