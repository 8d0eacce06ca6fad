package parsers

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/tincho9/plaso/internal/types"
)

func init() {
	Register("syslog", newSyslog)
}

// reSyslogLine matches the classic BSD syslog header: "Jan  2 15:04:05 host".
var reSyslogLine = regexp.MustCompile(`^([A-Z][a-z]{2}) {1,2}(\d{1,2}) (\d{2}:\d{2}:\d{2}) (\S+) (.*)$`)

type syslogParser struct {
	year int
}

func newSyslog(pre *types.PreProcess, _ *types.Options) (Parser, error) {
	year := pre.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return &syslogParser{year: year}, nil
}

func (p *syslogParser) Name() string { return "syslog" }

func (p *syslogParser) Description() string {
	return "BSD syslog lines; the year comes from preprocessing."
}

func (p *syslogParser) Parse(src io.ReadSeeker, spec *types.PathSpec) ([]types.EventObject, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	var events []types.EventObject
	offset := int64(0)
	for _, line := range bytes.Split(data, []byte("\n")) {
		m := reSyslogLine.FindSubmatch(line)
		if m == nil {
			offset += int64(len(line)) + 1
			continue
		}
		stamp := fmt.Sprintf("%s %s %s %d", m[1], m[2], m[3], p.year)
		ts, err := time.ParseInLocation("Jan 2 15:04:05 2006", stamp, time.UTC)
		if err != nil {
			offset += int64(len(line)) + 1
			continue
		}
		events = append(events, types.EventObject{
			Timestamp: ts.UnixMicro(),
			Offset:    offset,
			PathSpec:  spec,
			Parser:    p.Name(),
			Desc:      string(m[5]),
		})
		offset += int64(len(line)) + 1
	}
	if events == nil {
		return nil, ErrUnsupportedFormat
	}
	return events, nil
}
