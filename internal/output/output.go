// Package output holds the event output formatters. Like parsers they
// register at init time; only the enumeration entry point is interesting to
// the selection core, the formatters themselves are plain sinks.
package output

import (
	"io"

	"github.com/tincho9/plaso/internal/parsers"
	"github.com/tincho9/plaso/internal/registry"
	"github.com/tincho9/plaso/internal/types"
)

// Formatter writes extracted events to a stream.
type Formatter interface {
	Name() string
	PrintEvents(w io.Writer, events []types.EventObject) error
}

// Constructor builds a formatter instance.
type Constructor func() (Formatter, error)

var formatterTable = registry.NewTable[Constructor]()

// Register adds a formatter constructor under name; duplicates panic.
func Register(name string, ctor Constructor) {
	formatterTable.Register(name, ctor)
}

// Names returns the registered formatter names in registration order.
func Names() []string {
	return formatterTable.Names()
}

// FindAllOutputs constructs every registered output formatter, failing fast
// on a broken registration the same way parser enumeration does.
func FindAllOutputs() ([]Formatter, error) {
	var out []Formatter
	for _, name := range formatterTable.Names() {
		ctor, _ := formatterTable.Lookup(name)
		f, err := ctor()
		if err != nil {
			return nil, &parsers.CatalogIntegrityError{Name: name, Err: err}
		}
		out = append(out, f)
	}
	return out, nil
}

// Lookup constructs the formatter registered under name.
func Lookup(name string) (Formatter, bool) {
	ctor, ok := formatterTable.Lookup(name)
	if !ok {
		return nil, false
	}
	f, err := ctor()
	if err != nil {
		return nil, false
	}
	return f, true
}
