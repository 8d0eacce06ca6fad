package parsers

import (
	"bytes"
	"io"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("sqliteparser", newSQLite)
}

var sqliteMagic = []byte("SQLite format 3\x00")

// sqliteParser recognizes SQLite databases and hands the raw data to its
// registered plugins, which know the individual application schemas.
type sqliteParser struct {
	pre *types.PreProcess
	cfg *types.Options
}

func newSQLite(pre *types.PreProcess, cfg *types.Options) (Parser, error) {
	return &sqliteParser{pre: pre, cfg: cfg}, nil
}

func (p *sqliteParser) Name() string { return "sqliteparser" }

func (p *sqliteParser) Description() string {
	return "SQLite databases, analyzed by per-application plugins."
}

func (p *sqliteParser) Parse(src io.ReadSeeker, spec *types.PathSpec) ([]types.EventObject, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, sqliteMagic) {
		return nil, ErrUnsupportedFormat
	}

	plugins, err := PluginsFor(p.Name(), p.pre, p.cfg)
	if err != nil {
		return nil, err
	}

	var events []types.EventObject
	for _, pl := range plugins {
		evts, err := pl.Process(data, spec)
		if err != nil {
			return nil, err
		}
		events = append(events, evts...)
	}
	return events, nil
}
