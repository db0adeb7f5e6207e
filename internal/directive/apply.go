package directive

import (
	"hdlcfg/internal/diag"
	"hdlcfg/internal/suppress"
)

// ApplySuppression advances the suppression cursor of filename to line and
// returns the toggles that took effect. Lines of one file must not decrease
// until Lint().Restart is called.
func (e *Engine) ApplySuppression(filename string, line int) []suppress.Event {
	e.mustInit()
	return e.lint.Apply(filename, line)
}

// WarnEnabled reports whether code is enabled at the current position in
// filename.
func (e *Engine) WarnEnabled(filename string, code diag.Code) bool {
	e.mustInit()
	return e.lint.Enabled(filename, code)
}

// ApplyModulePragmas returns the markers for a module definition.
func (e *Engine) ApplyModulePragmas(module string) []Marker {
	e.mustInit()
	m := e.modules.Resolve(module)
	if m == nil {
		return nil
	}
	return m.markers()
}

// ApplyFunctionTaskPragmas returns the markers for a function or task.
// Isolate-assignment markers are only produced for functions.
func (e *Engine) ApplyFunctionTaskPragmas(module, task string, isFunction bool) []Marker {
	e.mustInit()
	m := e.modules.Resolve(module)
	if m == nil {
		return nil
	}
	t := m.tasks.Resolve(task)
	if t == nil {
		return nil
	}
	return t.markers(isFunction)
}

// ApplyVariableAttributes returns the markers for a variable, in registration
// order. Variables of a task only see attributes registered for that task.
func (e *Engine) ApplyVariableAttributes(module, task, variable string) []Marker {
	e.mustInit()
	m := e.modules.Resolve(module)
	if m == nil {
		return nil
	}
	vars := m.vars
	if task != "" {
		t := m.tasks.Resolve(task)
		if t == nil {
			return nil
		}
		vars = t.vars
	}
	v := vars.Resolve(variable)
	if v == nil {
		return nil
	}
	return v.markers()
}

// ApplyCoverageBlockSuppression returns at most one coverage_block_off marker
// for a block. A block is matched by its starting line in filename, and a
// named block also by module and block name.
func (e *Engine) ApplyCoverageBlockSuppression(module, block string, anonymous bool, filename string, line int) []Marker {
	e.mustInit()
	off := false
	if f := e.files.Resolve(filename); f != nil && f.has(line, flagCoverageBlockOff) {
		off = true
	}
	if !off && !anonymous {
		if m := e.modules.Resolve(module); m != nil && m.coverageOffMatch(block) {
			off = true
		}
	}
	if !off {
		return nil
	}
	return []Marker{{Kind: MarkerCoverageBlockOff}}
}

// ApplyCasePragmas returns the full_case and parallel_case markers for the
// case statement at line.
func (e *Engine) ApplyCasePragmas(filename string, line int) []Marker {
	e.mustInit()
	f := e.files.Resolve(filename)
	if f == nil {
		return nil
	}
	var out []Marker
	if f.hasAnchored(line, flagFullCase) {
		out = append(out, Marker{Kind: MarkerFullCase})
	}
	if f.hasAnchored(line, flagParallelCase) {
		out = append(out, Marker{Kind: MarkerParallelCase})
	}
	return out
}
