package suppress

import (
	"testing"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/wildcard"
)

func mustAdd(t *testing.T, x *Index, code diag.Code, pattern string, start, end int, on bool) {
	t.Helper()
	if err := x.Add(code, pattern, start, end, on); err != nil {
		t.Fatalf("Add(%s, %q, %d, %d, %v): %v", code.Name(), pattern, start, end, on, err)
	}
}

func TestOnOffSameLineEndsOff(t *testing.T) {
	for _, onFirst := range []bool{true, false} {
		x := NewIndex(nil, nil)
		if onFirst {
			mustAdd(t, x, diag.LintWidth, "a.v", 10, 0, true)
			mustAdd(t, x, diag.LintWidth, "a.v", 10, 0, false)
		} else {
			mustAdd(t, x, diag.LintWidth, "a.v", 10, 0, false)
			mustAdd(t, x, diag.LintWidth, "a.v", 10, 0, true)
		}
		evs := x.Apply("a.v", 10)
		if len(evs) != 2 || !evs[0].On || evs[1].On {
			t.Fatalf("onFirst=%v: events = %v", onFirst, evs)
		}
		if x.Enabled("a.v", diag.LintWidth) {
			t.Errorf("onFirst=%v: WIDTH enabled at line 10, want disabled", onFirst)
		}
	}
}

func TestUnterminatedRange(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintUnused, "a.v", 3, 0, false)
	for _, line := range []int{1, 2} {
		x.Apply("a.v", line)
		if !x.Enabled("a.v", diag.LintUnused) {
			t.Fatalf("line %d: UNUSED disabled too early", line)
		}
	}
	for _, line := range []int{3, 100, 100000} {
		x.Apply("a.v", line)
		if x.Enabled("a.v", diag.LintUnused) {
			t.Fatalf("line %d: UNUSED enabled, want disabled to end of file", line)
		}
	}
}

func TestCursorSequence(t *testing.T) {
	x := NewIndex(nil, nil)
	x.Defaults().Set(diag.LintWidth, false)
	mustAdd(t, x, diag.LintWidth, "top.v", 5, 15, true)

	lines := []int{1, 5, 10, 15, 20}
	want := []bool{false, true, true, false, false}
	for i, line := range lines {
		x.Apply("top.v", line)
		if got := x.Enabled("top.v", diag.LintWidth); got != want[i] {
			t.Errorf("line %d: enabled = %v, want %v", line, got, want[i])
		}
	}
}

func TestApplyReturnsOnlyNewEvents(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "a.v", 2, 4, false)
	if evs := x.Apply("a.v", 1); len(evs) != 0 {
		t.Fatalf("line 1: %v", evs)
	}
	if evs := x.Apply("a.v", 2); len(evs) != 1 || evs[0].Line != 2 || evs[0].On {
		t.Fatalf("line 2: %v", evs)
	}
	if evs := x.Apply("a.v", 3); len(evs) != 0 {
		t.Fatalf("line 3: %v", evs)
	}
	if evs := x.Apply("a.v", 9); len(evs) != 1 || evs[0].Line != 4 || !evs[0].On {
		t.Fatalf("line 9: %v", evs)
	}
}

func TestUniversalPatternFlipsDefault(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintUnused, "a.v", 1, 0, true)
	mustAdd(t, x, diag.LintUnused, AllFiles, 50, 60, false)

	if x.Defaults().Enabled(diag.LintUnused) {
		t.Fatal("default for UNUSED should be off")
	}
	if x.Enabled("b.v", diag.LintUnused) {
		t.Error("b.v has no events and should follow the default")
	}
	x.Apply("a.v", 1)
	if !x.Enabled("a.v", diag.LintUnused) {
		t.Error("a.v switched UNUSED on explicitly")
	}
	if x.Len() != 1 {
		t.Errorf("universal pattern must not be indexed, Len = %d", x.Len())
	}
}

func TestWildcardFilePatterns(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "*/rtl/*.v", 1, 0, false)
	mustAdd(t, x, diag.LintUnused, "src/rtl/cpu.v", 5, 0, false)

	x.Apply("src/rtl/cpu.v", 5)
	if x.Enabled("src/rtl/cpu.v", diag.LintWidth) || x.Enabled("src/rtl/cpu.v", diag.LintUnused) {
		t.Error("cpu.v should have both codes disabled")
	}
	x.Apply("src/tb/tb.v", 5)
	if !x.Enabled("src/tb/tb.v", diag.LintWidth) {
		t.Error("tb.v does not match */rtl/*.v")
	}
}

func TestCursorPerFile(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "a.v", 10, 0, false)
	mustAdd(t, x, diag.LintWidth, "b.v", 2, 0, false)

	x.Apply("a.v", 5)
	x.Apply("b.v", 3)
	x.Apply("a.v", 7) // a.v keeps its own position
	if !x.Enabled("a.v", diag.LintWidth) {
		t.Error("a.v line 7 should be enabled")
	}
	if x.Enabled("b.v", diag.LintWidth) {
		t.Error("b.v line 3 should be disabled")
	}
	x.Apply("a.v", 12)
	if x.Enabled("a.v", diag.LintWidth) {
		t.Error("a.v line 12 should be disabled")
	}
}

func TestDecreasingLinePanics(t *testing.T) {
	x := NewIndex(nil, nil)
	x.Apply("a.v", 10)
	x.Apply("a.v", 10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for decreasing line")
		}
	}()
	x.Apply("a.v", 9)
}

func TestRestart(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "a.v", 4, 8, false)
	x.Apply("a.v", 20)
	x.Restart("a.v")
	evs := x.Apply("a.v", 5)
	if len(evs) != 1 || evs[0].Line != 4 {
		t.Fatalf("after restart: %v", evs)
	}
	if x.Enabled("a.v", diag.LintWidth) {
		t.Error("line 5 should be disabled after restart")
	}
}

func TestRegistrationInvalidatesCursor(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "a.v", 1, 0, false)
	x.Apply("a.v", 10)

	mustAdd(t, x, diag.LintUnused, "a.*", 3, 0, false)
	if x.Enabled("a.v", diag.LintUnused) {
		t.Fatal("new registration not visible at current position")
	}
	evs := x.Apply("a.v", 11)
	if len(evs) != 2 {
		t.Fatalf("rebuild should replay both events, got %v", evs)
	}
	if x.Enabled("a.v", diag.LintWidth) || x.Enabled("a.v", diag.LintUnused) {
		t.Error("both codes should be disabled")
	}
}

func TestSharedClockInvalidates(t *testing.T) {
	clock := wildcard.NewClock()
	x := NewIndex(clock, nil)
	x.Apply("a.v", 1)
	before := clock.Now()
	mustAdd(t, x, diag.LintWidth, "a.v", 1, 0, false)
	if clock.Now() == before {
		t.Fatal("Add must advance the shared clock")
	}
}

func TestBadRange(t *testing.T) {
	x := NewIndex(nil, nil)
	if err := x.Add(diag.LintWidth, "a.v", 10, 5, false); err == nil {
		t.Error("end before start accepted")
	}
	if err := x.Add(diag.LintWidth, "a.v", -1, 0, false); err == nil {
		t.Error("negative start accepted")
	}
	if x.Len() != 0 {
		t.Errorf("rejected ranges stored: Len = %d", x.Len())
	}
}

func TestEventOrder(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintUnused, "a.v", 7, 0, false)
	mustAdd(t, x, diag.LintWidth, "a.v", 7, 0, false)
	mustAdd(t, x, diag.LintWidth, "*.v", 7, 0, true)
	mustAdd(t, x, diag.LintWidth, "a.v", 2, 0, true)

	evs := x.Events("a.v")
	want := []Event{
		{Line: 2, Code: diag.LintWidth, On: true},
		{Line: 7, Code: diag.LintUnused, On: false},
		{Line: 7, Code: diag.LintWidth, On: true},
		{Line: 7, Code: diag.LintWidth, On: false},
	}
	if len(evs) != len(want) {
		t.Fatalf("events = %v", evs)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, evs[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	x := NewIndex(nil, nil)
	mustAdd(t, x, diag.LintWidth, "a.v", 1, 0, false)
	mustAdd(t, x, diag.LintUnused, AllFiles, 0, 0, false)
	x.Apply("a.v", 3)
	x.Reset()
	if x.Len() != 0 || len(x.Defaults().Disabled()) != 0 {
		t.Fatal("reset left state behind")
	}
	if evs := x.Apply("a.v", 1); len(evs) != 0 {
		t.Fatalf("events after reset: %v", evs)
	}
}

func BenchmarkApply(b *testing.B) {
	x := NewIndex(nil, nil)
	for i := 0; i < 100; i++ {
		_ = x.Add(diag.LintWidth, "*.v", i*10+1, i*10+5, false)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		line := i % 1000
		if line == 0 {
			x.Restart("cpu.v")
		}
		x.Apply("cpu.v", line)
	}
}
