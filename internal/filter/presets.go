package filter

import "sort"

// presets map a short operating-system profile name to the parsers usually
// relevant for it. Preset names share the filter namespace with parser names,
// so they must not collide with registered parsers.
var presets = map[string][]string{
	"android": {"sqliteparser", "filestat"},
	"linux":   {"syslog", "filestat", "sqliteparser"},
	"macos":   {"syslog", "filestat", "sqliteparser"},
	"webhist": {"sqliteparser"},
	"win7":    {"winreg", "filestat", "sqliteparser"},
	"winxp":   {"winreg", "filestat"},
}

// Preset returns the member parser names of a preset, if name is one.
func Preset(name string) ([]string, bool) {
	members, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, true
}

// PresetNames returns the available preset names for help output.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
