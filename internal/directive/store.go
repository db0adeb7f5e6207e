package directive

import "hdlcfg/internal/wildcard"

type (
	moduleResolver = wildcard.Resolver[ModuleConfig, *ModuleConfig]
	taskResolver   = wildcard.Resolver[TaskConfig, *TaskConfig]
	varResolver    = wildcard.Resolver[VarConfig, *VarConfig]
	fileResolver   = wildcard.Resolver[FileConfig, *FileConfig]
)

// VarAttr is one attribute directive matched to a variable.
type VarAttr struct {
	Kind AttrKind
	Sens Sensitivity
}

// VarConfig is the attribute list of a variable. Every matching directive
// contributes its entries; nothing is deduplicated.
type VarConfig struct {
	Attrs []VarAttr
}

func (v *VarConfig) Merge(other *VarConfig) {
	v.Attrs = append(v.Attrs, other.Attrs...)
}

func (v *VarConfig) markers() []Marker {
	out := make([]Marker, 0, len(v.Attrs))
	for _, a := range v.Attrs {
		out = append(out, Marker{Kind: MarkerAttr, Attr: a.Kind})
		if a.Kind == AttrPublicFlatRW {
			out = append(out, Marker{Kind: MarkerAlwaysPublic, Sens: a.Sens})
		}
	}
	return out
}

// TaskConfig holds the pragmas of a function or task and its variables.
type TaskConfig struct {
	vars     *varResolver
	isolate  bool
	noInline bool
	public   bool
}

func newTaskConfig(clock *wildcard.Clock) *TaskConfig {
	return &TaskConfig{vars: wildcard.NewResolver[VarConfig, *VarConfig](clock, nil)}
}

// Merge never turns a set flag off.
func (t *TaskConfig) Merge(other *TaskConfig) {
	t.isolate = t.isolate || other.isolate
	t.noInline = t.noInline || other.noInline
	t.public = t.public || other.public
	t.vars.MergeFrom(other.vars)
}

func (t *TaskConfig) markers(isFunction bool) []Marker {
	var out []Marker
	if t.noInline {
		out = append(out, Marker{Kind: MarkerNoInlineTask})
	}
	if t.public {
		out = append(out, Marker{Kind: MarkerPublicTask})
	}
	if isFunction && t.isolate {
		out = append(out, Marker{Kind: MarkerIsolateAssign})
	}
	return out
}

// inlineDecision is a one-shot choice; the earliest registration wins.
type inlineDecision struct {
	set   bool
	value bool
	seq   uint64
}

func (d *inlineDecision) merge(other inlineDecision) {
	if other.set && (!d.set || other.seq < d.seq) {
		*d = other
	}
}

// ModuleConfig holds the pragmas of a module and its tasks and variables.
type ModuleConfig struct {
	tasks *taskResolver
	vars  *varResolver

	// block name patterns, first-seen order
	coverageOff []string
	coverageSet map[string]struct{}

	inline inlineDecision
	public bool
}

func newModuleConfig(clock *wildcard.Clock) *ModuleConfig {
	return &ModuleConfig{
		tasks:       wildcard.NewResolver[TaskConfig, *TaskConfig](clock, newTaskConfig),
		vars:        wildcard.NewResolver[VarConfig, *VarConfig](clock, nil),
		coverageSet: make(map[string]struct{}),
	}
}

func (m *ModuleConfig) Merge(other *ModuleConfig) {
	m.tasks.MergeFrom(other.tasks)
	m.vars.MergeFrom(other.vars)
	for _, b := range other.coverageOff {
		m.addCoverageOff(b)
	}
	m.inline.merge(other.inline)
	m.public = m.public || other.public
}

func (m *ModuleConfig) addCoverageOff(block string) {
	if _, ok := m.coverageSet[block]; ok {
		return
	}
	m.coverageSet[block] = struct{}{}
	m.coverageOff = append(m.coverageOff, block)
}

func (m *ModuleConfig) setInline(on bool, seq uint64) {
	m.inline.merge(inlineDecision{set: true, value: on, seq: seq})
}

func (m *ModuleConfig) markers() []Marker {
	var out []Marker
	if m.inline.set {
		if m.inline.value {
			out = append(out, Marker{Kind: MarkerInlineModule})
		} else {
			out = append(out, Marker{Kind: MarkerNoInlineModule})
		}
	}
	if m.public {
		out = append(out, Marker{Kind: MarkerPublicModule})
	}
	return out
}

func (m *ModuleConfig) coverageOffMatch(block string) bool {
	for _, pat := range m.coverageOff {
		if wildcard.Match(pat, block) {
			return true
		}
	}
	return false
}

type lineFlags uint8

const (
	flagCoverageBlockOff lineFlags = 1 << iota
	flagFullCase
	flagParallelCase
)

// AnyLine is the line anchor that matches every line of a file.
const AnyLine = 0

// FileConfig holds position-anchored pragmas of the files matching a pattern.
type FileConfig struct {
	lines map[int]lineFlags
}

func newFileConfig(*wildcard.Clock) *FileConfig {
	return &FileConfig{lines: make(map[int]lineFlags)}
}

// Merge ORs the flags line by line.
func (f *FileConfig) Merge(other *FileConfig) {
	for line, flags := range other.lines {
		f.lines[line] |= flags
	}
}

func (f *FileConfig) add(line int, flag lineFlags) {
	f.lines[line] |= flag
}

func (f *FileConfig) has(line int, flag lineFlags) bool {
	return f.lines[line]&flag != 0
}

// hasAnchored also honours the AnyLine anchor.
func (f *FileConfig) hasAnchored(line int, flag lineFlags) bool {
	return f.has(AnyLine, flag) || f.has(line, flag)
}
