package parsers

import (
	"bytes"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	RegisterPlugin("chrome_history", "sqliteparser", newChromeHistory)
}

type chromeHistoryPlugin struct{}

func newChromeHistory(_ *types.PreProcess, _ *types.Options) (Plugin, error) {
	return &chromeHistoryPlugin{}, nil
}

func (p *chromeHistoryPlugin) Name() string   { return "chrome_history" }
func (p *chromeHistoryPlugin) Parent() string { return "sqliteparser" }

func (p *chromeHistoryPlugin) Process(data []byte, spec *types.PathSpec) ([]types.EventObject, error) {
	// The History database carries both tables; require both before claiming
	// the file, "urls" alone appears in too many schemas.
	urls := bytes.Index(data, []byte("urls"))
	visits := bytes.Index(data, []byte("visits"))
	if urls < 0 || visits < 0 {
		return nil, nil
	}
	return []types.EventObject{{
		Offset:   int64(urls),
		PathSpec: spec,
		Parser:   p.Name(),
		Desc:     "Chrome History schema markers: urls, visits",
	}}, nil
}
