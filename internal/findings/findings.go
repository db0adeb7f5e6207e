// Package findings reads lint warnings from a compiler log.
package findings

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"fortio.org/safecast"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/source"
)

// Finding is one warning of the log.
type Finding struct {
	Rule    string    // as written in the log
	Code    diag.Code // UnknownCode when Rule is not a known lint rule
	File    string
	Line    int
	Col     int // 0 when the log has no column
	Message string
}

// Pos returns the finding location; out-of-range numbers become 0.
func (f Finding) Pos() source.Pos {
	line, err := safecast.Conv[uint32](f.Line)
	if err != nil {
		line = 0
	}
	col, err := safecast.Conv[uint32](f.Col)
	if err != nil {
		col = 0
	}
	return source.Pos{File: f.File, Line: line, Col: col}
}

func (f Finding) String() string {
	return fmt.Sprintf("%%Warning-%s: %s: %s", f.Rule, f.Pos(), f.Message)
}

// %Warning-WIDTH: rtl/alu.v:12:5: Operator ADD expects 8 bits
var warningRe = regexp.MustCompile(`^%Warning-([A-Za-z0-9_]+): ([^:]+):(\d+):(?:(\d+):)? ?(.*)$`)

// Parse reads every warning line of r. Other lines are skipped.
func Parse(r io.Reader) ([]Finding, error) {
	var out []Finding
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if f, ok := ParseLine(sc.Text()); ok {
			out = append(out, f)
		}
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("failed to read log: %w", err)
	}
	return out, nil
}

// ParseLine parses a single warning line.
func ParseLine(line string) (Finding, bool) {
	m := warningRe.FindStringSubmatch(line)
	if m == nil {
		return Finding{}, false
	}
	lineNo, err := strconv.Atoi(m[3])
	if err != nil {
		return Finding{}, false
	}
	col := 0
	if m[4] != "" {
		if col, err = strconv.Atoi(m[4]); err != nil {
			return Finding{}, false
		}
	}
	f := Finding{
		Rule:    m[1],
		File:    m[2],
		Line:    lineNo,
		Col:     col,
		Message: m[5],
	}
	if code, ok := diag.ParseLint(f.Rule); ok {
		f.Code = code
	}
	return f, true
}

// SortByPosition orders findings by file, then line, then column, keeping the
// log order of findings at the same position. Suppression queries need the
// lines of one file in non-decreasing order.
func SortByPosition(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		a, b := fs[i], fs[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Col < b.Col
	})
}
