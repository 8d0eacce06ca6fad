package core

import (
	"github.com/tincho9/plaso/internal/evidence"
	"github.com/tincho9/plaso/internal/hexdump"
	"github.com/tincho9/plaso/internal/output"
	"github.com/tincho9/plaso/internal/parsers"
	"github.com/tincho9/plaso/internal/types"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so external consumers can depend on a stable path; they
// can be replaced with decoupled structs later without breaking callers.
type (
	EventObject = types.EventObject
	PathSpec    = types.PathSpec
	PreProcess  = types.PreProcess
	Options     = types.Options
	Parser      = parsers.Parser
)

// CatalogIntegrityError reports a broken parser or plugin registration.
type CatalogIntegrityError = parsers.CatalogIntegrityError

// FindAllParsers returns the active parser set for a filter expression,
// keyed by selection category ("all" is always present).
func FindAllParsers(pre *PreProcess, cfg *Options, filterString string) (map[string][]Parser, error) {
	return parsers.FindAllParsers(pre, cfg, filterString)
}

// FindAllOutputs constructs every registered output formatter.
func FindAllOutputs() ([]output.Formatter, error) {
	return output.FindAllOutputs()
}

// ParserNames returns the registered parser names in registration order.
func ParserNames() []string { return parsers.Names() }

// RenderBytes renders data as an offset-tagged hex/ASCII dump.
func RenderBytes(data []byte, origin int64) string {
	return hexdump.RenderBytes(data, origin)
}

// RenderAroundEvent renders the byte window surrounding an event, surfacing
// open failures as text. Pass nil opener to read plain files.
func RenderAroundEvent(evt *EventObject, open hexdump.Opener, before int64, lines int) string {
	if open == nil {
		open = evidence.Open
	}
	return hexdump.RenderAroundEvent(evt, open, before, lines)
}
