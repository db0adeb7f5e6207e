package directive

import (
	"fmt"
	"strconv"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/source"
	"hdlcfg/internal/trace"
)

// AddLineSuppression switches code on or off for files matching filePattern
// from start; with end != 0 the opposite sense takes over at end. The pattern
// "*" changes the default for every file.
func (e *Engine) AddLineSuppression(pos source.Pos, code diag.Code, filePattern string, start, end int, on bool) {
	e.mustInit()
	if err := e.lint.Add(code, filePattern, start, end, on); err != nil {
		diag.ReportError(e.reporter, diag.CfgBadLineRange, pos,
			fmt.Sprintf("%s: %v", code.Name(), err)).Emit()
		return
	}
	e.point("register:lint", filePattern+":"+strconv.Itoa(start)+"-"+strconv.Itoa(end)+" "+code.Name())
}

// AddModuleInline records an inline decision for modules matching pattern.
// The first decision registered for a module wins.
func (e *Engine) AddModuleInline(pos source.Pos, modulePattern string, on bool) {
	e.mustInit()
	m := e.modules.Register(modulePattern)
	m.setInline(on, e.clock.Now())
	e.point("register:inline", modulePattern)
}

// AddFunctionNoInline marks matching functions and tasks as not inlinable.
// Forcing tasks to inline is not supported and is reported.
func (e *Engine) AddFunctionNoInline(pos source.Pos, modulePattern, taskPattern string, on bool) {
	e.mustInit()
	if !on {
		diag.ReportError(e.reporter, diag.CfgTaskInlineUnsupported, pos,
			"forcing inline is not supported for tasks, only no_inline").Emit()
		return
	}
	e.modules.Register(modulePattern).tasks.Register(taskPattern).noInline = true
	e.point("register:no_inline", modulePattern+"."+taskPattern)
}

// AddInline dispatches on taskPattern: empty targets the module.
func (e *Engine) AddInline(pos source.Pos, modulePattern, taskPattern string, on bool) {
	if taskPattern == "" {
		e.AddModuleInline(pos, modulePattern, on)
		return
	}
	e.AddFunctionNoInline(pos, modulePattern, taskPattern, !on)
}

// AddAttribute records a variable attribute. Public and isolate_assignments
// without a variable apply to the task or module instead.
func (e *Engine) AddAttribute(pos source.Pos, modulePattern, taskPattern, varPattern string, kind AttrKind, sens Sensitivity) {
	e.mustInit()
	switch {
	case !kind.valid():
		diag.ReportError(e.reporter, diag.CfgUnknownAttr, pos,
			fmt.Sprintf("unknown attribute kind %s", kind)).Emit()
		return
	case kind == AttrPublicFlatRW && sens == nil:
		diag.ReportError(e.reporter, diag.CfgPublicFlatRWNeedsSens, pos,
			"public_flat_rw needs sensitivity").Emit()
		return
	case kind != AttrPublicFlatRW && sens != nil:
		diag.ReportError(e.reporter, diag.CfgUnexpectedSens, pos,
			fmt.Sprintf("sensitivity not expected for attribute %s", kind)).Emit()
		return
	}

	if varPattern == "" {
		e.addScopeAttribute(pos, modulePattern, taskPattern, kind)
		return
	}
	attr := VarAttr{Kind: kind, Sens: sens}
	m := e.modules.Register(modulePattern)
	if taskPattern == "" {
		v := m.vars.Register(varPattern)
		v.Attrs = append(v.Attrs, attr)
	} else {
		v := m.tasks.Register(taskPattern).vars.Register(varPattern)
		v.Attrs = append(v.Attrs, attr)
	}
	e.point("register:attr", scopeName(modulePattern, taskPattern)+"."+varPattern+" "+kind.String())
}

func (e *Engine) addScopeAttribute(pos source.Pos, modulePattern, taskPattern string, kind AttrKind) {
	switch kind {
	case AttrIsolateAssignments:
		if taskPattern == "" {
			diag.ReportError(e.reporter, diag.CfgIsolateNoTarget, pos,
				"isolate_assignments only applies to signals or functions/tasks").Emit()
			return
		}
		e.modules.Register(modulePattern).tasks.Register(taskPattern).isolate = true
	case AttrPublic:
		m := e.modules.Register(modulePattern)
		if taskPattern == "" {
			m.public = true
		} else {
			m.tasks.Register(taskPattern).public = true
		}
	default:
		diag.ReportError(e.reporter, diag.CfgMissingSignal, pos,
			fmt.Sprintf("missing signal name for attribute %s", kind)).Emit()
		return
	}
	e.point("register:attr", scopeName(modulePattern, taskPattern)+" "+kind.String())
}

// AddCoverageBlockOffAt disables coverage for the block starting at line in
// files matching filePattern.
func (e *Engine) AddCoverageBlockOffAt(pos source.Pos, filePattern string, line int) {
	e.addFileFlag(pos, filePattern, line, flagCoverageBlockOff, "register:coverage")
}

// AddCoverageBlockOff disables coverage for named blocks matching
// blockPattern inside modules matching modulePattern.
func (e *Engine) AddCoverageBlockOff(pos source.Pos, modulePattern, blockPattern string) {
	e.mustInit()
	e.modules.Register(modulePattern).addCoverageOff(blockPattern)
	e.point("register:coverage", modulePattern+"."+blockPattern)
}

// AddCaseFull marks the case statement at line as full; line 0 marks every
// case statement of the file.
func (e *Engine) AddCaseFull(pos source.Pos, filePattern string, line int) {
	e.addFileFlag(pos, filePattern, line, flagFullCase, "register:full_case")
}

// AddCaseParallel is AddCaseFull for parallel_case.
func (e *Engine) AddCaseParallel(pos source.Pos, filePattern string, line int) {
	e.addFileFlag(pos, filePattern, line, flagParallelCase, "register:parallel_case")
}

func (e *Engine) addFileFlag(pos source.Pos, filePattern string, line int, flag lineFlags, event string) {
	e.mustInit()
	if line < 0 {
		diag.ReportError(e.reporter, diag.CfgBadLineRange, pos,
			fmt.Sprintf("invalid line %d", line)).Emit()
		return
	}
	e.files.Register(filePattern).add(line, flag)
	e.point(event, filePattern+":"+strconv.Itoa(line))
}

func (e *Engine) point(name, detail string) {
	trace.Point(e.tracer, trace.ScopeStore, name, detail)
}

func scopeName(module, task string) string {
	if task == "" {
		return module
	}
	return module + "." + task
}
