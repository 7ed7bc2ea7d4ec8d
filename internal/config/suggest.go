package config

import "github.com/sahilm/fuzzy"

// maxSuggestions caps how many alternatives are offered for a typo.
const maxSuggestions = 3

// Suggest returns up to three candidates closest to name, best match first.
func Suggest(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
