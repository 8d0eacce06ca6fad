package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "plaso.yaml", "parsers: \"winxp,-winreg\"\nlines: 10\nbefore: 32\noutput: json\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Parsers == nil || *cfg.Parsers != "winxp,-winreg" {
		t.Fatalf("expected parsers filter, got %#v", cfg.Parsers)
	}
	if cfg.Lines == nil || *cfg.Lines != 10 {
		t.Fatalf("expected lines=10, got %#v", cfg.Lines)
	}
	if cfg.Before == nil || *cfg.Before != 32 {
		t.Fatalf("expected before=32, got %#v", cfg.Before)
	}
	if cfg.Output == nil || *cfg.Output != "json" {
		t.Fatalf("expected output=json, got %#v", cfg.Output)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "plaso.yaml", "lines: 1\n")
	writeTemp(t, dir, ".plaso.yaml", "lines: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Lines == nil || *cfg.Lines != 7 {
		t.Fatalf("expected lines=7 from .plaso.yaml, got %#v", cfg.Lines)
	}
}

func TestLoadLocal_Missing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "plaso.yaml", "lines: [not an int\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
