package parsers

import (
	"github.com/tincho9/plaso/internal/registry"
	"github.com/tincho9/plaso/internal/types"
)

// Plugin specializes a parent parser for a sub-format. Plugins do not open
// evidence themselves; the owning parser hands them the raw data.
type Plugin interface {
	Name() string
	Parent() string
	Process(data []byte, spec *types.PathSpec) ([]types.EventObject, error)
}

// PluginConstructor builds a plugin instance.
type PluginConstructor func(pre *types.PreProcess, cfg *types.Options) (Plugin, error)

type pluginEntry struct {
	parent string
	ctor   PluginConstructor
}

var pluginTable = registry.NewTable[pluginEntry]()

// RegisterPlugin adds a plugin constructor to the catalog under name,
// declaring the parser that owns it.
func RegisterPlugin(name, parent string, ctor PluginConstructor) {
	pluginTable.Register(name, pluginEntry{parent: parent, ctor: ctor})
}

// PluginNames returns all registered plugin names in registration order.
func PluginNames() []string {
	return pluginTable.Names()
}

// PluginNamesFor returns the names of the plugins owned by parent.
func PluginNamesFor(parent string) []string {
	var out []string
	for _, name := range pluginTable.Names() {
		if entry, ok := pluginTable.Lookup(name); ok && entry.parent == parent {
			out = append(out, name)
		}
	}
	return out
}

// PluginsFor constructs every plugin owned by parent, in registration order,
// failing fast like InstantiateAll.
func PluginsFor(parent string, pre *types.PreProcess, cfg *types.Options) ([]Plugin, error) {
	var out []Plugin
	for _, name := range pluginTable.Names() {
		entry, ok := pluginTable.Lookup(name)
		if !ok || entry.parent != parent {
			continue
		}
		pl, err := entry.ctor(pre, cfg)
		if err != nil {
			return nil, &CatalogIntegrityError{Name: name, Err: err}
		}
		out = append(out, pl)
	}
	return out, nil
}

// ResolveParents maps plugin names in the include list to the parsers that
// own them, so that asking for a plugin by name pulls in its parent. Lookup
// against the plugin catalog is by exact key; the filter layer lowercases
// names upstream and plugins register lowercase, so the two line up. Plugins
// present in exclude are skipped, as are parents already included or already
// resolved. The returned list is ordered and duplicate-free.
func ResolveParents(include, exclude []string) []string {
	var parents []string
	if len(include) == 0 {
		return parents
	}

	for _, name := range include {
		entry, ok := pluginTable.Lookup(name)
		if !ok {
			continue
		}
		if containsName(exclude, name) {
			continue
		}
		parent := entry.parent
		if parent == "" || containsName(include, parent) || containsName(parents, parent) {
			continue
		}
		parents = append(parents, parent)
	}
	return parents
}

func containsName(list []string, name string) bool {
	for _, have := range list {
		if have == name {
			return true
		}
	}
	return false
}
