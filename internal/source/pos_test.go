package source

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{Pos{}, "<unknown>"},
		{Pos{File: "a.v"}, "a.v"},
		{Pos{File: "a.v", Line: 3}, "a.v:3"},
		{Pos{File: "a.v", Line: 3, Col: 7}, "a.v:3:7"},
	}
	for _, tc := range tests {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("Pos%+v.String() = %q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestPosLess(t *testing.T) {
	a := Pos{File: "a.v", Line: 10}
	b := Pos{File: "a.v", Line: 2, Col: 1}
	c := Pos{File: "b.v", Line: 1}
	if !b.Less(a) {
		t.Errorf("expected %v < %v", b, a)
	}
	if !a.Less(c) {
		t.Errorf("expected %v < %v", a, c)
	}
	if a.Less(a) {
		t.Errorf("position must not be less than itself")
	}
}

func TestPosBase(t *testing.T) {
	p := Pos{File: "rtl/core/alu.v", Line: 4}
	if got := p.Base().File; got != "alu.v" {
		t.Errorf("Base().File = %q, want alu.v", got)
	}
	if !(Pos{}).Base().Less(p) {
		t.Errorf("empty position should sort first")
	}
}
