package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/source"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.CfgMissingSignal, source.Pos{File: "cfg/rules.toml", Line: 12}, "missing signal name for attribute clocker").
		WithNote(source.Pos{File: "cfg/rules.toml", Line: 10}, "module given here"))
	bag.Add(diag.NewWarning(diag.CfgUnknownRule, source.Pos{File: "cfg/rules.toml", Line: 3}, "unknown lint rule \"FOO\""))
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), PrettyOpts{ShowNotes: true, PathMode: PathModeBasename})
	want := "rules.toml:12: ERROR CFG1003: missing signal name for attribute clocker\n" +
		"  note: rules.toml:10: module given here\n" +
		"rules.toml:3: WARNING CFG1006: unknown lint rule \"FOO\"\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyMaxAndColor(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), PrettyOpts{Color: true, Max: 1})
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes:\n%q", out)
	}
	if !strings.Contains(out, "... and 1 more diagnostics") {
		t.Errorf("expected truncation notice:\n%s", out)
	}
	if strings.Contains(out, "note:") {
		t.Errorf("notes shown without ShowNotes:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleBag(), JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || out.Diagnostics[0].Code != "CFG1003" || out.Diagnostics[0].Location.Line != 12 {
		t.Errorf("unexpected output: %+v", out)
	}
	if len(out.Diagnostics[0].Notes) != 1 || out.Diagnostics[1].Severity != "WARNING" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestFormatPath(t *testing.T) {
	if got := formatPath("a/b/c.v", PathModeBasename, ""); got != "c.v" {
		t.Errorf("basename = %q", got)
	}
	if got := formatPath("a/b/c.v", PathModeAuto, ""); got != "a/b/c.v" {
		t.Errorf("auto = %q", got)
	}
	if got := ParsePathMode("relative"); got != PathModeRelative {
		t.Errorf("ParsePathMode = %v", got)
	}
}
