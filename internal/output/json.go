package output

import (
	"encoding/json"
	"io"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("json", func() (Formatter, error) { return &jsonFormatter{}, nil })
}

type jsonFormatter struct{}

func (f *jsonFormatter) Name() string { return "json" }

func (f *jsonFormatter) PrintEvents(w io.Writer, events []types.EventObject) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if events == nil {
		events = []types.EventObject{}
	}
	return enc.Encode(events)
}
