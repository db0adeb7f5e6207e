package diag

import (
	"fmt"
	"sort"
	"strings"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Directive (configuration) errors reported while registering directives.
	CfgInfo                  Code = 1000
	CfgPublicFlatRWNeedsSens Code = 1001
	CfgUnexpectedSens        Code = 1002
	CfgMissingSignal         Code = 1003
	CfgIsolateNoTarget       Code = 1004
	CfgTaskInlineUnsupported Code = 1005
	CfgUnknownRule           Code = 1006
	CfgUnknownAttr           Code = 1007
	CfgBadLineRange          Code = 1008
	CfgMissingTarget         Code = 1009
	CfgAmbiguousTarget       Code = 1010

	// Lint codes of the HDL front end. These are the codes directives switch on and off.
	LintInfo           Code = 2000
	LintAlwComb        Code = 2001
	LintBlkSeq         Code = 2002
	LintCaseIncomplete Code = 2003
	LintCaseOverlap    Code = 2004
	LintCaseX          Code = 2005
	LintCombDly        Code = 2006
	LintDeclFilename   Code = 2007
	LintImplicit       Code = 2008
	LintLitEndian      Code = 2009
	LintMultiDriven    Code = 2010
	LintPinMissing     Code = 2011
	LintStmtDly        Code = 2012
	LintSyncAsyncNet   Code = 2013
	LintUndriven       Code = 2014
	LintUnoptFlat      Code = 2015
	LintUnsigned       Code = 2016
	LintUnused         Code = 2017
	LintWidth          Code = 2018
	LintVarHidden      Code = 2019

	IOLoadFileError  Code = 4000
	IOWriteFileError Code = 4001

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		CfgInfo:                  "Directive information",
		CfgPublicFlatRWNeedsSens: "public_flat_rw needs sensitivity",
		CfgUnexpectedSens:        "sensitivity not expected for attribute",
		CfgMissingSignal:         "missing -signal",
		CfgIsolateNoTarget:       "isolate_assignments only applies to signals or functions/tasks",
		CfgTaskInlineUnsupported: "no_inline not supported for tasks",
		CfgUnknownRule:           "unknown lint rule",
		CfgUnknownAttr:           "unknown attribute kind",
		CfgBadLineRange:          "invalid line range",
		CfgMissingTarget:         "directive has no target",
		CfgAmbiguousTarget:       "directive names both a file position and a block",
		LintInfo:                 "Lint information",
		LintAlwComb:              "always_comb has side effects",
		LintBlkSeq:               "blocking assignment in sequential logic",
		LintCaseIncomplete:       "case values incompletely covered",
		LintCaseOverlap:          "case values overlap",
		LintCaseX:                "case statement with X",
		LintCombDly:              "delayed assignment in combinational logic",
		LintDeclFilename:         "module name does not match file name",
		LintImplicit:             "implicit wire declaration",
		LintLitEndian:            "little endian bit range",
		LintMultiDriven:          "signal has multiple drivers",
		LintPinMissing:           "cell pin not connected",
		LintStmtDly:              "ignoring delay on statement",
		LintSyncAsyncNet:         "mixed synchronous and asynchronous use",
		LintUndriven:             "signal is not driven",
		LintUnoptFlat:            "signal unoptimizable: circular logic",
		LintUnsigned:             "comparison is constant due to unsigned arithmetic",
		LintUnused:               "signal is not used",
		LintWidth:                "operand width mismatch",
		LintVarHidden:            "declaration hides an outer declaration",
		IOLoadFileError:          "I/O load file error",
		IOWriteFileError:         "I/O write file error",
		ObsInfo:                  "Observability information",
		ObsTimings:               "Pipeline timings",
	}

	// lintNames are the rule names users write in directives (`lint_off -rule WIDTH`).
	lintNames = map[Code]string{
		LintAlwComb:        "ALWCOMBORDER",
		LintBlkSeq:         "BLKSEQ",
		LintCaseIncomplete: "CASEINCOMPLETE",
		LintCaseOverlap:    "CASEOVERLAP",
		LintCaseX:          "CASEX",
		LintCombDly:        "COMBDLY",
		LintDeclFilename:   "DECLFILENAME",
		LintImplicit:       "IMPLICIT",
		LintLitEndian:      "LITENDIAN",
		LintMultiDriven:    "MULTIDRIVEN",
		LintPinMissing:     "PINMISSING",
		LintStmtDly:        "STMTDLY",
		LintSyncAsyncNet:   "SYNCASYNCNET",
		LintUndriven:       "UNDRIVEN",
		LintUnoptFlat:      "UNOPTFLAT",
		LintUnsigned:       "UNSIGNED",
		LintUnused:         "UNUSED",
		LintWidth:          "WIDTH",
		LintVarHidden:      "VARHIDDEN",
	}

	lintByName = func() map[string]Code {
		m := make(map[string]Code, len(lintNames))
		for c, n := range lintNames {
			m[n] = c
		}
		return m
	}()
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLint reports whether c is a lint code that directives may switch on or off.
func (c Code) IsLint() bool {
	_, ok := lintNames[c]
	return ok
}

// Name returns the rule name of a lint code, or the ID for any other code.
func (c Code) Name() string {
	if n, ok := lintNames[c]; ok {
		return n
	}
	return c.ID()
}

// ParseLint looks up a lint rule by name. Names are case-insensitive.
func ParseLint(name string) (Code, bool) {
	c, ok := lintByName[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// LintCodes returns every lint code in ascending order.
func LintCodes() []Code {
	out := make([]Code, 0, len(lintNames))
	for c := range lintNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
