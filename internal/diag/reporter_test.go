package diag

import (
	"testing"

	"hdlcfg/internal/source"
)

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	b := ReportError(r, CfgMissingSignal, source.Pos{File: "cfg.toml", Line: 3}, "missing -signal").
		WithNote(source.Pos{File: "cfg.toml", Line: 1}, "module given here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || d.Code != CfgMissingSignal || len(d.Notes) != 1 {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	pos := source.Pos{File: "a.v", Line: 4}
	r.Report(LintWidth, SevWarning, pos, "x", nil)
	r.Report(LintWidth, SevWarning, pos, "x", nil)
	r.Report(LintWidth, SevWarning, pos, "y", nil)
	if bag.Len() != 2 {
		t.Errorf("expected 2 diagnostics after dedup, got %d", bag.Len())
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := NewBag(4), NewBag(4)
	m := MultiReporter{BagReporter{Bag: a}, nil, NopReporter{}, BagReporter{Bag: b}}
	ReportWarning(m, LintUnused, source.NoPos, "unused").Emit()
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("fan-out failed: %d, %d", a.Len(), b.Len())
	}
}
