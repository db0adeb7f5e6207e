package findings

import (
	"strings"
	"testing"

	"hdlcfg/internal/diag"
)

const log = `%Warning-WIDTH: rtl/alu.v:12:5: Operator ADD expects 8 bits on the RHS
                                         : ... In instance top.alu
%Warning-UNUSED: rtl/top.v:3: Signal is not used: 'dbg'
%Error: rtl/top.v:9:1: syntax error
%Warning-FUTURE: rtl/top.v:1:1: Unknown future rule
- V3Error.cpp: warnings found
%Warning-width: rtl/alu.v:2:1: lower case rule
`

func TestParse(t *testing.T) {
	fs, err := Parse(strings.NewReader(log))
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 4 {
		t.Fatalf("got %d findings: %v", len(fs), fs)
	}
	w := fs[0]
	if w.Code != diag.LintWidth || w.File != "rtl/alu.v" || w.Line != 12 || w.Col != 5 ||
		w.Message != "Operator ADD expects 8 bits on the RHS" {
		t.Errorf("first finding = %+v", w)
	}
	if u := fs[1]; u.Code != diag.LintUnused || u.Line != 3 || u.Col != 0 || u.Message != "Signal is not used: 'dbg'" {
		t.Errorf("second finding = %+v", u)
	}
	if f := fs[2]; f.Code != diag.UnknownCode || f.Rule != "FUTURE" {
		t.Errorf("unknown rule = %+v", f)
	}
	if f := fs[3]; f.Code != diag.LintWidth {
		t.Errorf("lower case rule = %+v", f)
	}
}

func TestSortByPosition(t *testing.T) {
	fs := []Finding{
		{File: "b.v", Line: 1, Message: "b1"},
		{File: "a.v", Line: 9, Message: "a9"},
		{File: "a.v", Line: 2, Col: 4, Message: "a2:4"},
		{File: "a.v", Line: 2, Col: 1, Message: "a2:1"},
		{File: "a.v", Line: 9, Message: "a9 again"},
	}
	SortByPosition(fs)
	var got []string
	for _, f := range fs {
		got = append(got, f.Message)
	}
	want := "a2:1,a2:4,a9,a9 again,b1"
	if strings.Join(got, ",") != want {
		t.Errorf("order = %v, want %s", got, want)
	}
}

func TestFindingString(t *testing.T) {
	f, ok := ParseLine("%Warning-WIDTH: a.v:7:2: too wide")
	if !ok {
		t.Fatal("line not parsed")
	}
	if got := f.String(); got != "%Warning-WIDTH: a.v:7:2: too wide" {
		t.Errorf("String() = %q", got)
	}
}
