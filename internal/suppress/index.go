package suppress

import (
	"fmt"
	"sort"
	"strconv"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/trace"
	"hdlcfg/internal/wildcard"
)

// AllFiles is the filename pattern that changes the process-wide default
// instead of adding file events.
const AllFiles = "*"

type patternEvents struct {
	pat    wildcard.Pattern
	events []Event // sorted by Event.before
}

// cursor walks the merged events of one file.
type cursor struct {
	epoch  uint64
	events []Event
	pos    int
	line   int // last queried line, -1 before the first query
	state  map[diag.Code]bool

	// rebuilt since the last Apply; the next Apply reports the replayed prefix
	replayed bool
}

// Index stores suppression events and answers per-line queries.
type Index struct {
	clock    *wildcard.Clock
	tracer   trace.Tracer
	defaults Defaults

	byPattern map[string]*patternEvents
	patterns  []*patternEvents // registration order

	cursors  map[string]*cursor
	lastFile string
	last     *cursor
}

// NewIndex creates an empty index. A nil clock gives the index its own.
func NewIndex(clock *wildcard.Clock, tracer trace.Tracer) *Index {
	if clock == nil {
		clock = wildcard.NewClock()
	}
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Index{
		clock:     clock,
		tracer:    tracer,
		byPattern: make(map[string]*patternEvents),
		cursors:   make(map[string]*cursor),
	}
}

// Defaults exposes the process-wide code state.
func (x *Index) Defaults() *Defaults { return &x.defaults }

// Add registers a toggle of code for files matching filePattern. With end 0
// the toggle lasts to the end of the file; otherwise the opposite sense is
// restored at end. The AllFiles pattern changes the default and ignores the
// lines.
func (x *Index) Add(code diag.Code, filePattern string, start, end int, on bool) error {
	if filePattern == AllFiles {
		x.defaults.Set(code, on)
		return nil
	}
	if start < 0 || end < 0 || (end != 0 && end < start) {
		return fmt.Errorf("invalid line range %d-%d", start, end)
	}
	x.insert(filePattern, Event{Line: start, Code: code, On: on})
	if end != 0 {
		x.insert(filePattern, Event{Line: end, Code: code, On: !on})
	}
	x.clock.Tick()
	return nil
}

func (x *Index) insert(filePattern string, ev Event) {
	pe, ok := x.byPattern[filePattern]
	if !ok {
		pe = &patternEvents{pat: wildcard.Compile(filePattern)}
		x.byPattern[filePattern] = pe
		x.patterns = append(x.patterns, pe)
	}
	// after equal events, so registration order breaks exact ties
	i := sort.Search(len(pe.events), func(i int) bool { return ev.before(pe.events[i]) })
	pe.events = append(pe.events, Event{})
	copy(pe.events[i+1:], pe.events[i:])
	pe.events[i] = ev
}

// Apply advances the cursor of filename to line and returns the events that
// took effect, in order. The slice is only valid until the next call.
//
// Lines queried for one file must not decrease until Restart is called for
// it; a decreasing line panics.
func (x *Index) Apply(filename string, line int) []Event {
	c := x.cursorFor(filename)
	if line < c.line {
		panic(fmt.Sprintf("suppress: line %d of %s queried after line %d", line, filename, c.line))
	}
	start := c.pos
	x.refresh(filename, c)
	if c.replayed {
		start = 0
		c.replayed = false
	}
	c.advance(line)
	return c.events[start:c.pos]
}

// Enabled reports whether code is enabled in filename at the cursor position.
// A code toggled by the file's own events ignores the default.
func (x *Index) Enabled(filename string, code diag.Code) bool {
	if c, ok := x.cursors[filename]; ok {
		x.refresh(filename, c)
		if on, ok := c.state[code]; ok {
			return on
		}
	}
	return x.defaults.Enabled(code)
}

// Restart forgets the cursor of filename so the next Apply walks the file
// from the beginning.
func (x *Index) Restart(filename string) {
	delete(x.cursors, filename)
	if x.lastFile == filename {
		x.last = nil
	}
}

// Events returns the merged event sequence for filename.
func (x *Index) Events(filename string) []Event {
	return append([]Event(nil), x.merge(filename)...)
}

// Each calls fn for every file pattern and its events, in registration order.
func (x *Index) Each(fn func(pattern string, events []Event)) {
	for _, pe := range x.patterns {
		fn(pe.pat.String(), pe.events)
	}
}

// Len returns the number of file patterns with events.
func (x *Index) Len() int { return len(x.patterns) }

// Reset drops every event, cursor and default.
func (x *Index) Reset() {
	x.byPattern = make(map[string]*patternEvents)
	x.patterns = nil
	x.cursors = make(map[string]*cursor)
	x.lastFile, x.last = "", nil
	x.defaults.reset()
	x.clock.Tick()
}

func (x *Index) cursorFor(filename string) *cursor {
	if x.last != nil && x.lastFile == filename {
		return x.last
	}
	c, ok := x.cursors[filename]
	if !ok {
		c = &cursor{line: -1}
		x.cursors[filename] = c
	}
	x.lastFile, x.last = filename, c
	return c
}

// refresh rebuilds a stale cursor and replays it up to the last queried line.
func (x *Index) refresh(filename string, c *cursor) {
	now := x.clock.Now()
	if c.events != nil && c.epoch == now {
		return
	}
	c.epoch = now
	c.events = x.merge(filename)
	c.pos = 0
	c.state = nil
	c.replayed = true
	c.advance(c.line)
	trace.Point(x.tracer, trace.ScopeQuery, "suppress:rebuild", filename+" events="+strconv.Itoa(len(c.events)))
}

func (x *Index) merge(filename string) []Event {
	out := make([]Event, 0)
	for _, pe := range x.patterns {
		if pe.pat.Match(filename) {
			out = append(out, pe.events...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].before(out[j]) })
	return out
}

func (c *cursor) advance(line int) {
	for c.pos < len(c.events) && c.events[c.pos].Line <= line {
		ev := c.events[c.pos]
		if c.state == nil {
			c.state = make(map[diag.Code]bool)
		}
		c.state[ev.Code] = ev.On
		c.pos++
	}
	c.line = line
}
