package parsers

import (
	"bytes"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	RegisterPlugin("skype", "sqliteparser", newSkype)
}

type skypePlugin struct{}

func newSkype(_ *types.PreProcess, _ *types.Options) (Plugin, error) {
	return &skypePlugin{}, nil
}

func (p *skypePlugin) Name() string   { return "skype" }
func (p *skypePlugin) Parent() string { return "sqliteparser" }

// Process looks for the Skype main.db schema markers in the raw database
// image and reports where they sit.
func (p *skypePlugin) Process(data []byte, spec *types.PathSpec) ([]types.EventObject, error) {
	var events []types.EventObject
	for _, marker := range [][]byte{[]byte("Messages"), []byte("Skype")} {
		idx := bytes.Index(data, marker)
		if idx < 0 {
			continue
		}
		events = append(events, types.EventObject{
			Offset:   int64(idx),
			PathSpec: spec,
			Parser:   p.Name(),
			Desc:     "Skype schema marker: " + string(marker),
		})
	}
	return events, nil
}
