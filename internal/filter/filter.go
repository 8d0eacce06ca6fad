// Package filter parses the comma-separated parser filter expression into
// include and exclude name lists. Entries are matched case-insensitively and
// may be exact names, preset names, or glob patterns; a leading minus marks
// an entry as an exclusion.
package filter

import (
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Parse splits filterString into lowercase include and exclude name lists.
// Presets expand to their member names; glob entries expand against known
// (the registered component names). Order is preserved and duplicates are
// dropped. An empty filter string yields two empty lists.
func Parse(filterString string, known []string) (include, exclude []string) {
	for _, entry := range strings.Split(filterString, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		negated := strings.HasPrefix(entry, "-")
		if negated {
			entry = entry[1:]
			if entry == "" {
				continue
			}
		}

		names := expand(entry, known)
		if negated {
			exclude = appendUnique(exclude, names...)
		} else {
			include = appendUnique(include, names...)
		}
	}
	return include, exclude
}

// expand resolves a single entry to concrete component names.
func expand(entry string, known []string) []string {
	if names, ok := Preset(entry); ok {
		return names
	}
	if strings.ContainsAny(entry, "*?[") {
		var matches []string
		for _, name := range known {
			if ok, _ := doublestar.Match(entry, strings.ToLower(name)); ok {
				matches = append(matches, strings.ToLower(name))
			}
		}
		return matches
	}
	return []string{entry}
}

func appendUnique(list []string, names ...string) []string {
	for _, name := range names {
		seen := false
		for _, have := range list {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, name)
		}
	}
	return list
}
