package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tincho9/plaso/pkg/core"
)

func TestFindAllParsersFacade(t *testing.T) {
	results, err := core.FindAllParsers(nil, nil, "")
	if err != nil {
		t.Fatalf("FindAllParsers: %v", err)
	}
	if len(results["all"]) != len(core.ParserNames()) {
		t.Fatalf("empty filter should select all %d parsers, got %d",
			len(core.ParserNames()), len(results["all"]))
	}
}

func TestRenderAroundEventFacade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog")
	if err := os.WriteFile(path, []byte("ABCDEFGHIJKLMNOP"), 0o644); err != nil {
		t.Fatal(err)
	}

	evt := &core.EventObject{PathSpec: &core.PathSpec{Type: "os", Path: path}}
	got := core.RenderAroundEvent(evt, nil, 0, 1)
	if !strings.HasSuffix(got, "ABCDEFGHIJKLMNOP") {
		t.Fatalf("unexpected dump: %q", got)
	}
}
