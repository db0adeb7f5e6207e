package wildcard

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"top", "top", true},
		{"top", "top2", false},
		{"top", "Top", false},
		{"*", "", true},
		{"*", "anything/at/all", true},
		{"core_*", "core_alu", true},
		{"core_*", "core_", true},
		{"core_*", "xcore_alu", false},
		{"*_alu", "core_alu", true},
		{"*alu*", "my_alu_unit", true},
		{"?", "a", true},
		{"?", "", false},
		{"?", "ab", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"src/*.v", "src/rtl/top.v", true},
		{"*.v", "top.sv", false},
		{"*.sv", "top.sv", true},
		// only '*' and '?' are special
		{"mem[0]*", "mem[0]_q", true},
		{"mem[0]*", "mem0_q", false},
		{"{a,b}", "a", false},
		{"{a,b}", "{a,b}", true},
		{"a\\b*", "a\\bc", true},
		{"u_*.q?", "u_core.qd", true},
	}
	for _, tc := range tests {
		if got := Match(tc.pattern, tc.name); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.want)
		}
	}
}

func TestCompileClassification(t *testing.T) {
	if Compile("top").Wild() {
		t.Errorf("literal pattern classified as wildcard")
	}
	if !Compile("to?").Wild() || !Compile("t*").Wild() {
		t.Errorf("wildcard pattern classified as literal")
	}
	if got := Compile("core_*").String(); got != "core_*" {
		t.Errorf("String() = %q", got)
	}
}
