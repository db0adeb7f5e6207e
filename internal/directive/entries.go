package directive

import (
	"sort"
	"strconv"
	"strings"

	"hdlcfg/internal/suppress"
)

// Entry is one registered directive target, flattened for listings.
type Entry struct {
	Store   string // module, task, var, coverage, file, lint
	Scope   string // enclosing module or module.task pattern
	Pattern string
	Detail  string
}

// Entries lists every registered target. Literal patterns of a store come
// first in sorted order, then wildcard patterns in registration order.
func (e *Engine) Entries() []Entry {
	e.mustInit()
	var out []Entry
	e.modules.Each(func(mod string, m *ModuleConfig) {
		var flags []string
		if m.inline.set {
			if m.inline.value {
				flags = append(flags, "inline")
			} else {
				flags = append(flags, "no_inline")
			}
		}
		if m.public {
			flags = append(flags, "public")
		}
		if len(flags) > 0 {
			out = append(out, Entry{Store: "module", Pattern: mod, Detail: strings.Join(flags, " ")})
		}
		for _, b := range m.coverageOff {
			out = append(out, Entry{Store: "coverage", Scope: mod, Pattern: b, Detail: "coverage_block_off"})
		}
		m.tasks.Each(func(task string, t *TaskConfig) {
			var flags []string
			if t.noInline {
				flags = append(flags, "no_inline")
			}
			if t.public {
				flags = append(flags, "public")
			}
			if t.isolate {
				flags = append(flags, "isolate_assignments")
			}
			if len(flags) > 0 {
				out = append(out, Entry{Store: "task", Scope: mod, Pattern: task, Detail: strings.Join(flags, " ")})
			}
			out = appendVars(out, mod+"."+task, t.vars)
		})
		out = appendVars(out, mod, m.vars)
	})
	e.files.Each(func(file string, f *FileConfig) {
		lines := make([]int, 0, len(f.lines))
		for line := range f.lines {
			lines = append(lines, line)
		}
		sort.Ints(lines)
		for _, line := range lines {
			out = append(out, Entry{Store: "file", Pattern: file, Detail: fileDetail(line, f.lines[line])})
		}
	})
	for _, code := range e.lint.Defaults().Disabled() {
		out = append(out, Entry{Store: "lint", Pattern: suppress.AllFiles, Detail: code.Name() + " off"})
	}
	e.lint.Each(func(file string, events []suppress.Event) {
		parts := make([]string, len(events))
		for i, ev := range events {
			parts[i] = ev.String()
		}
		out = append(out, Entry{Store: "lint", Pattern: file, Detail: strings.Join(parts, " ")})
	})
	return out
}

func appendVars(out []Entry, scope string, vars *varResolver) []Entry {
	vars.Each(func(name string, v *VarConfig) {
		parts := make([]string, len(v.Attrs))
		for i, a := range v.Attrs {
			parts[i] = a.Kind.String()
		}
		out = append(out, Entry{Store: "var", Scope: scope, Pattern: name, Detail: strings.Join(parts, " ")})
	})
	return out
}

func fileDetail(line int, flags lineFlags) string {
	var sb strings.Builder
	if line == AnyLine {
		sb.WriteString("all lines:")
	} else {
		sb.WriteString("line ")
		sb.WriteString(strconv.Itoa(line))
		sb.WriteByte(':')
	}
	if flags&flagCoverageBlockOff != 0 {
		sb.WriteString(" coverage_block_off")
	}
	if flags&flagFullCase != 0 {
		sb.WriteString(" full_case")
	}
	if flags&flagParallelCase != 0 {
		sb.WriteString(" parallel_case")
	}
	return sb.String()
}
