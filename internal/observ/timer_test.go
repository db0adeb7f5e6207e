package observ

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"hdlcfg/internal/trace"
)

func fakeClock(step time.Duration) func() time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * step)
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer(nil)
	tm.now = fakeClock(time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "2 manifests")
	apply := tm.Begin("apply")
	tm.End(apply, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 1 || r.Phases[1].DurationMS != 1 || r.TotalMS != 2 {
		t.Errorf("unexpected durations: %+v", r)
	}
	sum := tm.Summary()
	if !strings.Contains(sum, "// 2 manifests") || !strings.Contains(sum, "total") {
		t.Errorf("summary:\n%s", sum)
	}
}

func TestTrackRecordsFailure(t *testing.T) {
	tm := NewTimer(nil)
	boom := errors.New("boom")
	if err := tm.Track("lint", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("Track error = %v", err)
	}
	if p := tm.Phases(); len(p) != 1 || p[0].Note != "failed" {
		t.Errorf("phases = %+v", p)
	}
}

func TestTimerEmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTimer(trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText))
	tm.End(tm.Begin("check"), "ok")
	out := buf.String()
	if !strings.Contains(out, "→ check") || !strings.Contains(out, "← check (ok)") {
		t.Errorf("trace output:\n%s", out)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer(nil).Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("empty report = %+v", r)
	}
}

func TestTimerSpansNestUnderParent(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelPhase)
	root := trace.Begin(ring, trace.ScopeDriver, "hdlcfg lint", 0)
	tm := NewTimer(ring).Under(root.ID())
	tm.End(tm.Begin("filter"), "")

	snap := ring.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	for _, ev := range snap[1:] {
		if ev.ParentID != root.ID() {
			t.Errorf("%s %s parent = %d, want %d", ev.Kind, ev.Name, ev.ParentID, root.ID())
		}
	}
}
