package parsers

import (
	"errors"
	"fmt"
	"io"

	"github.com/tincho9/plaso/internal/registry"
	"github.com/tincho9/plaso/internal/types"
)

// ErrUnsupportedFormat is returned by a parser when the evidence item is not
// in the format the parser understands. Callers treat it as "not my file",
// not as a failure.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Parser extracts events from a single evidence item.
type Parser interface {
	Name() string
	Description() string
	Parse(src io.ReadSeeker, spec *types.PathSpec) ([]types.EventObject, error)
}

// Constructor builds a parser instance. The preprocessing state and run
// options are forwarded as-is; their contents are the parser's concern.
type Constructor func(pre *types.PreProcess, cfg *types.Options) (Parser, error)

var parserTable = registry.NewTable[Constructor]()

// Register adds a parser constructor to the catalog under name. Names are
// lowercase by convention; duplicates panic.
func Register(name string, ctor Constructor) {
	parserTable.Register(name, ctor)
}

// Names returns all registered parser names in registration order.
func Names() []string {
	return parserTable.Names()
}

// CatalogIntegrityError reports that a registered parser or plugin failed to
// construct. A broken registration aborts the whole enumeration; there are
// no partial results.
type CatalogIntegrityError struct {
	Name string
	Err  error
}

func (e *CatalogIntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: constructing %q: %v", e.Name, e.Err)
}

func (e *CatalogIntegrityError) Unwrap() error { return e.Err }

// InstantiateAll constructs a fresh instance of every registered parser, in
// registration order. The first constructor failure aborts enumeration and is
// returned as a CatalogIntegrityError naming the offending parser.
func InstantiateAll(pre *types.PreProcess, cfg *types.Options) ([]Parser, error) {
	var out []Parser
	for _, name := range parserTable.Names() {
		ctor, _ := parserTable.Lookup(name)
		p, err := ctor(pre, cfg)
		if err != nil {
			return nil, &CatalogIntegrityError{Name: name, Err: err}
		}
		out = append(out, p)
	}
	return out, nil
}
