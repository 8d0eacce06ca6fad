package parsers

import (
	"strings"
	"testing"

	"github.com/tincho9/plaso/internal/types"
)

func selectedNames(t *testing.T, filterString string) []string {
	t.Helper()
	results, err := FindAllParsers(nil, &types.Options{}, filterString)
	if err != nil {
		t.Fatalf("FindAllParsers(%q): %v", filterString, err)
	}
	if _, ok := results["all"]; !ok {
		t.Fatalf("result missing %q category", "all")
	}
	var names []string
	for _, p := range results["all"] {
		names = append(names, strings.ToLower(p.Name()))
	}
	return names
}

func TestFindAllParsersEmptyFilterSelectsEverything(t *testing.T) {
	names := selectedNames(t, "")
	registered := Names()
	if len(names) != len(registered) {
		t.Fatalf("expected %d parsers, got %v", len(registered), names)
	}
	// selection preserves registry enumeration order
	for i, want := range registered {
		if names[i] != want {
			t.Fatalf("order mismatch: got %v, registry %v", names, registered)
		}
	}
}

func TestFindAllParsersExclusionWins(t *testing.T) {
	names := selectedNames(t, "sqliteparser,-sqliteparser")
	for _, n := range names {
		if n == "sqliteparser" {
			t.Fatalf("excluded parser selected: %v", names)
		}
	}
}

func TestFindAllParsersPluginPullsParent(t *testing.T) {
	names := selectedNames(t, "skype")
	if len(names) != 1 || names[0] != "sqliteparser" {
		t.Fatalf("expected [sqliteparser], got %v", names)
	}
}

func TestFindAllParsersPluginParentExcluded(t *testing.T) {
	names := selectedNames(t, "skype,-sqliteparser")
	for _, n := range names {
		if n == "sqliteparser" {
			t.Fatalf("excluded parent selected: %v", names)
		}
	}
}

func TestFindAllParsersPreset(t *testing.T) {
	names := selectedNames(t, "winxp")
	want := map[string]bool{"winreg": true, "filestat": true}
	if len(names) != len(want) {
		t.Fatalf("expected %d parsers for winxp, got %v", len(want), names)
	}
	for _, n := range names {
		if !want[n] {
			t.Fatalf("unexpected parser %q for winxp preset", n)
		}
	}
}

func TestFindAllParsersGlob(t *testing.T) {
	names := selectedNames(t, "*sql*")
	if len(names) != 1 || names[0] != "sqliteparser" {
		t.Fatalf("expected [sqliteparser], got %v", names)
	}
}

func TestFindAllParsersNoMatchIsNotAnError(t *testing.T) {
	names := selectedNames(t, "nosuchparser")
	if len(names) != 0 {
		t.Fatalf("expected empty selection, got %v", names)
	}
}

func TestFindAllParsersCaseInsensitiveFilter(t *testing.T) {
	names := selectedNames(t, "SysLog")
	if len(names) != 1 || names[0] != "syslog" {
		t.Fatalf("expected [syslog], got %v", names)
	}
}

func TestFindAllParsersFreshInstances(t *testing.T) {
	a := selectedNames(t, "")
	b := selectedNames(t, "")
	if len(a) != len(b) {
		t.Fatalf("selection not repeatable: %v vs %v", a, b)
	}
	ra, err := FindAllParsers(nil, nil, "syslog")
	if err != nil {
		t.Fatal(err)
	}
	rb, err := FindAllParsers(nil, nil, "syslog")
	if err != nil {
		t.Fatal(err)
	}
	if ra["all"][0] == rb["all"][0] {
		t.Fatalf("expected fresh instances per selection pass")
	}
}
