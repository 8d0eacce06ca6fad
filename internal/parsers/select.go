package parsers

import (
	"strings"

	"github.com/tincho9/plaso/internal/filter"
	"github.com/tincho9/plaso/internal/types"
)

// FindAllParsers returns the active parser set for a filter expression,
// keyed by selection category. Today only "all" is populated; the mapping
// shape is kept so future categories do not change the interface.
//
// With an empty filter every registered parser is selected. Otherwise a
// parser is selected when its lowercase name is in the include list and not
// in the exclude list; an exclusion beats an inclusion for the same name.
// Plugin names in the include list pull in their owning parser. An empty
// selection is a valid result, not an error.
func FindAllParsers(pre *types.PreProcess, cfg *types.Options, filterString string) (map[string][]Parser, error) {
	if pre == nil {
		pre = &types.PreProcess{}
	}

	include, exclude := filter.Parse(filterString, KnownNames())
	include = append(include, ResolveParents(include, exclude)...)

	instances, err := InstantiateAll(pre, cfg)
	if err != nil {
		return nil, err
	}

	results := map[string][]Parser{"all": nil}
	for _, p := range instances {
		add := len(include) == 0 && len(exclude) == 0
		if !add {
			name := strings.ToLower(p.Name())
			if containsName(include, name) {
				add = true
			}
			// A specifically excluded parser trumps any include rule.
			if containsName(exclude, name) {
				add = false
			}
		}
		if add {
			results["all"] = append(results["all"], p)
		}
	}
	return results, nil
}

// KnownNames returns every registered parser and plugin name, the universe
// glob filter entries expand against.
func KnownNames() []string {
	return append(Names(), PluginNames()...)
}
