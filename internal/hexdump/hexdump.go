// Package hexdump renders byte windows as xxd-style text for diagnostic
// display around an extracted event. The column layout is a stable,
// user-facing format and must stay byte-for-byte reproducible.
package hexdump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/tincho9/plaso/internal/types"
)

// DefaultLines is the number of 16-byte lines rendered when the caller does
// not say otherwise.
const DefaultLines = 20

// Opener resolves a path spec to a seekable byte source. The evidence
// package provides implementations; tests substitute their own.
type Opener func(spec *types.PathSpec) (io.ReadSeeker, error)

// RenderBytes renders data as 16-byte lines. Each line carries a 7-digit hex
// offset (origin plus the line's position), eight 4-hex-character chunks each
// followed by a space, and a 16-character ASCII column where bytes with
// ordinal in (31,128) render literally and everything else as a dot. A
// trailing partial line is space-padded in the hex columns and dot-padded in
// the ASCII column. Lines are joined with single newlines, no trailing one.
func RenderBytes(data []byte, origin int64) string {
	if len(data) == 0 {
		return ""
	}
	var lines []string
	for start := 0; start < len(data); start += 16 {
		end := start + 16
		if end > len(data) {
			end = len(data)
		}
		lines = append(lines, renderLine(data[start:end], origin+int64(start)))
	}
	return strings.Join(lines, "\n")
}

func renderLine(chunk []byte, offset int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%07x: ", offset)

	hexed := hex.EncodeToString(chunk)
	if pad := 32 - len(hexed); pad > 0 {
		hexed += strings.Repeat(" ", pad)
	}
	for i := 0; i < 8; i++ {
		b.WriteString(hexed[i*4 : i*4+4])
		b.WriteByte(' ')
	}

	for i := 0; i < 16; i++ {
		if i < len(chunk) && chunk[i] > 31 && chunk[i] < 128 {
			b.WriteByte(chunk[i])
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// RenderFromSource seeks src to offset and renders up to lines 16-byte lines
// from there. A short read near the end of the source renders what was
// available.
func RenderFromSource(src io.ReadSeeker, offset int64, lines int) (string, error) {
	if lines <= 0 {
		lines = DefaultLines
	}
	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek to %d: %w", offset, err)
	}
	buf := make([]byte, lines*16)
	n, err := io.ReadFull(src, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("read at %d: %w", offset, err)
	}
	return RenderBytes(buf[:n], offset), nil
}

// RenderAroundEvent renders the byte window surrounding an event, starting
// before bytes ahead of the event's offset (clamped at zero). This path
// serves interactive inspection, so failures surface as text instead of
// errors: a missing event or byte location yields an empty string, and an
// open or read failure yields a descriptive message.
func RenderAroundEvent(evt *types.EventObject, open Opener, before int64, lines int) string {
	if evt == nil || evt.PathSpec == nil {
		return ""
	}

	src, err := open(evt.PathSpec)
	if err != nil {
		return fmt.Sprintf("Error opening file: %v", err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	offset := evt.Offset - before
	if offset < 0 {
		offset = 0
	}
	out, err := RenderFromSource(src, offset, lines)
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err)
	}
	return out
}
