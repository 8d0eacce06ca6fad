package parsers

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("winreg", newWinReg)
}

var regfMagic = []byte("regf")

// FILETIME epoch (1601-01-01) to POSIX epoch, in 100ns intervals.
const filetimeEpochDelta = 116444736000000000

type winRegParser struct{}

func newWinReg(_ *types.PreProcess, _ *types.Options) (Parser, error) {
	return &winRegParser{}, nil
}

func (p *winRegParser) Name() string { return "winreg" }

func (p *winRegParser) Description() string {
	return "Windows Registry hive files (REGF header)."
}

func (p *winRegParser) Parse(src io.ReadSeeker, spec *types.PathSpec) ([]types.EventObject, error) {
	header := make([]byte, 20)
	if _, err := io.ReadFull(src, header); err != nil {
		return nil, ErrUnsupportedFormat
	}
	if !bytes.HasPrefix(header, regfMagic) {
		return nil, ErrUnsupportedFormat
	}

	// Last-written FILETIME sits at offset 12 of the base block.
	ft := binary.LittleEndian.Uint64(header[12:20])
	if ft < filetimeEpochDelta {
		return nil, ErrUnsupportedFormat
	}
	return []types.EventObject{{
		Timestamp: int64((ft - filetimeEpochDelta) / 10),
		PathSpec:  spec,
		Parser:    p.Name(),
		Desc:      "hive last written",
	}}, nil
}
