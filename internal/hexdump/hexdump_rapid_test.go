package hexdump

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestRenderBytesShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 512).Draw(t, "data")
		origin := rapid.Int64Range(0, 1<<24).Draw(t, "origin")

		out := RenderBytes(data, origin)

		// pure function, no hidden state
		if again := RenderBytes(data, origin); again != out {
			t.Fatalf("rendering is not deterministic")
		}

		lines := strings.Split(out, "\n")
		wantLines := (len(data) + 15) / 16
		if len(lines) != wantLines {
			t.Fatalf("expected %d lines for %d bytes, got %d", wantLines, len(data), len(lines))
		}
		for i, line := range lines {
			// 9 offset chars, 8 chunks of 5, 16 ascii chars
			if len(line) != 9+40+16 {
				t.Fatalf("line %d has width %d: %q", i, len(line), line)
			}
			if line[8] != ' ' || line[7] != ':' {
				t.Fatalf("line %d offset column malformed: %q", i, line)
			}
		}
	})
}
