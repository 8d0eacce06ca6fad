package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/tincho9/plaso/internal/timelib"
	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("text", func() (Formatter, error) { return &textFormatter{}, nil })
}

type textFormatter struct{}

func (f *textFormatter) Name() string { return "text" }

func (f *textFormatter) PrintEvents(w io.Writer, events []types.EventObject) error {
	table := tablewriter.NewTable(w)
	table.Header("time", "parser", "offset", "source", "desc")
	for _, evt := range events {
		path := ""
		if evt.PathSpec != nil {
			path = evt.PathSpec.Path
		}
		if err := table.Append(
			timelib.ToISO8601(evt.Timestamp),
			evt.Parser,
			timelib.FormatOffset(evt.Offset),
			path,
			evt.Desc,
		); err != nil {
			return err
		}
	}
	return table.Render()
}
