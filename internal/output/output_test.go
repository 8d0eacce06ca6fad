package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tincho9/plaso/internal/types"
)

func TestFindAllOutputs(t *testing.T) {
	formatters, err := FindAllOutputs()
	if err != nil {
		t.Fatalf("FindAllOutputs: %v", err)
	}
	have := map[string]bool{}
	for _, f := range formatters {
		have[f.Name()] = true
	}
	for _, want := range []string{"text", "json"} {
		if !have[want] {
			t.Fatalf("missing formatter %q (got %v)", want, have)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	f, ok := Lookup("json")
	if !ok {
		t.Fatalf("json formatter not registered")
	}

	events := []types.EventObject{{
		Timestamp: 1340565054000000,
		Offset:    16,
		PathSpec:  &types.PathSpec{Type: "os", Path: "/evidence/syslog"},
		Parser:    "syslog",
		Desc:      "session opened",
	}}
	var buf bytes.Buffer
	if err := f.PrintEvents(&buf, events); err != nil {
		t.Fatalf("PrintEvents: %v", err)
	}

	var decoded []types.EventObject
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Parser != "syslog" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestJSONFormatterEmpty(t *testing.T) {
	f, _ := Lookup("json")
	var buf bytes.Buffer
	if err := f.PrintEvents(&buf, nil); err != nil {
		t.Fatalf("PrintEvents: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}
}

func TestTextFormatter(t *testing.T) {
	f, ok := Lookup("text")
	if !ok {
		t.Fatalf("text formatter not registered")
	}

	events := []types.EventObject{{
		Timestamp: 1340565054000000,
		Parser:    "syslog",
		Desc:      "session opened",
	}}
	var buf bytes.Buffer
	if err := f.PrintEvents(&buf, events); err != nil {
		t.Fatalf("PrintEvents: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2012-06-24T19:10:54Z", "syslog", "session opened"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}
