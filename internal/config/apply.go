package config

import (
	"fmt"
	"strings"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/directive"
	"hdlcfg/internal/source"
	"hdlcfg/internal/suppress"
)

// Apply registers every entry of m with e. Entry errors are reported to r and
// the entry is skipped; the remaining entries are still registered.
func (m *Manifest) Apply(e *directive.Engine, r diag.Reporter) {
	if r == nil {
		r = diag.NopReporter{}
	}
	for i := range m.Lint {
		m.applyLint(e, r, m.pos("lint", i), &m.Lint[i])
	}
	for i, in := range m.Inline {
		pos := m.pos("inline", i)
		if strings.TrimSpace(in.Module) == "" {
			missingTarget(r, pos, "inline entry needs a module")
			continue
		}
		on := in.On == nil || *in.On
		e.AddInline(pos, in.Module, in.Task, on)
	}
	for i, a := range m.Attr {
		pos := m.pos("attr", i)
		if strings.TrimSpace(a.Module) == "" {
			missingTarget(r, pos, "attr entry needs a module")
			continue
		}
		kind, err := directive.ParseAttrKind(a.Kind)
		if err != nil {
			diag.ReportError(r, diag.CfgUnknownAttr, pos, err.Error()).Emit()
			continue
		}
		var sens directive.Sensitivity
		if s := strings.TrimSpace(a.Sensitivity); s != "" {
			sens = s
		}
		e.AddAttribute(pos, a.Module, a.Task, a.Var, kind, sens)
	}
	for i, c := range m.Coverage {
		m.applyCoverage(e, r, m.pos("coverage", i), c)
	}
	for i, c := range m.Case {
		pos := m.pos("case", i)
		line, err := toInt(c.Line)
		if err != nil {
			diag.ReportError(r, diag.CfgBadLineRange, pos, err.Error()).Emit()
			continue
		}
		file := c.File
		if file == "" {
			file = suppress.AllFiles
		}
		if !c.Full && !c.Parallel {
			missingTarget(r, pos, "case entry sets neither full nor parallel")
			continue
		}
		if c.Full {
			e.AddCaseFull(pos, file, line)
		}
		if c.Parallel {
			e.AddCaseParallel(pos, file, line)
		}
	}
}

func (m *Manifest) applyLint(e *directive.Engine, r diag.Reporter, pos source.Pos, l *LintEntry) {
	codes := diag.LintCodes()
	if rule := strings.TrimSpace(l.Rule); rule != "" {
		code, ok := diag.ParseLint(rule)
		if !ok {
			diag.ReportError(r, diag.CfgUnknownRule, pos, fmt.Sprintf("unknown lint rule %q", rule)).Emit()
			return
		}
		codes = []diag.Code{code}
	}
	start, end, err := lineRange(l.Lines)
	if err != nil {
		diag.ReportError(r, diag.CfgBadLineRange, pos, err.Error()).Emit()
		return
	}
	file := l.File
	if file == "" {
		file = suppress.AllFiles
	}
	on := l.Off != nil && !*l.Off
	for _, code := range codes {
		e.AddLineSuppression(pos, code, file, start, end, on)
	}
}

// lineRange turns an inclusive [first, last] list into the start line and
// the line the opposite sense resumes at (0: never).
func lineRange(lines []int64) (start, end int, err error) {
	switch len(lines) {
	case 0:
		return 0, 0, nil
	case 1:
		lines = []int64{lines[0], lines[0]}
	case 2:
	default:
		return 0, 0, fmt.Errorf("lines takes [first] or [first, last], got %d values", len(lines))
	}
	if lines[0] < 1 || lines[1] < lines[0] {
		return 0, 0, fmt.Errorf("invalid line range %d-%d", lines[0], lines[1])
	}
	if start, err = toInt(lines[0]); err != nil {
		return 0, 0, err
	}
	if end, err = toInt(lines[1] + 1); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (m *Manifest) applyCoverage(e *directive.Engine, r diag.Reporter, pos source.Pos, c CoverageEntry) {
	byFile := c.File != ""
	byName := c.Module != "" || c.Block != ""
	switch {
	case byFile && byName:
		diag.ReportError(r, diag.CfgAmbiguousTarget, pos,
			"coverage entry names both a file and a module block").Emit()
	case byFile:
		line, err := toInt(c.Line)
		if err != nil {
			diag.ReportError(r, diag.CfgBadLineRange, pos, err.Error()).Emit()
			return
		}
		e.AddCoverageBlockOffAt(pos, c.File, line)
	case c.Module != "" && c.Block != "":
		e.AddCoverageBlockOff(pos, c.Module, c.Block)
	default:
		missingTarget(r, pos, "coverage entry needs file and line, or module and block")
	}
}

func (m *Manifest) pos(table string, i int) source.Pos {
	return source.Pos{File: m.Path, Line: m.entryLine(table, i)}
}

func missingTarget(r diag.Reporter, pos source.Pos, msg string) {
	diag.ReportError(r, diag.CfgMissingTarget, pos, msg).Emit()
}
