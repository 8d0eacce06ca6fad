package parsers

import (
	"io"
	"os"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("filestat", newFileStat)
}

type fileStatParser struct{}

func newFileStat(_ *types.PreProcess, _ *types.Options) (Parser, error) {
	return &fileStatParser{}, nil
}

func (p *fileStatParser) Name() string { return "filestat" }

func (p *fileStatParser) Description() string {
	return "File system metadata events (modification time)."
}

func (p *fileStatParser) Parse(_ io.ReadSeeker, spec *types.PathSpec) ([]types.EventObject, error) {
	if spec == nil {
		return nil, nil
	}
	st, err := os.Stat(spec.Path)
	if err != nil {
		return nil, err
	}
	return []types.EventObject{{
		Timestamp: st.ModTime().UnixMicro(),
		PathSpec:  spec,
		Parser:    p.Name(),
		Desc:      "mtime",
	}}, nil
}
