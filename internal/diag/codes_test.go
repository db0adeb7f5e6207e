package diag

import "testing"

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CfgMissingSignal, "CFG1003"},
		{LintWidth, "LNT2018"},
		{IOLoadFileError, "IO4000"},
		{ObsTimings, "OBS6001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range tests {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestParseLint(t *testing.T) {
	for _, name := range []string{"WIDTH", "width", " Width "} {
		c, ok := ParseLint(name)
		if !ok || c != LintWidth {
			t.Errorf("ParseLint(%q) = %v, %v; want LintWidth", name, c, ok)
		}
	}
	if _, ok := ParseLint("NOPE"); ok {
		t.Errorf("ParseLint(NOPE) should fail")
	}
	if _, ok := ParseLint(""); ok {
		t.Errorf("ParseLint(\"\") should fail")
	}
}

func TestLintCodesRoundTrip(t *testing.T) {
	codes := LintCodes()
	if len(codes) != len(lintNames) {
		t.Fatalf("LintCodes() returned %d codes, want %d", len(codes), len(lintNames))
	}
	for i, c := range codes {
		if i > 0 && codes[i-1] >= c {
			t.Errorf("LintCodes() not sorted at %d", i)
		}
		if !c.IsLint() {
			t.Errorf("%v should be a lint code", c)
		}
		back, ok := ParseLint(c.Name())
		if !ok || back != c {
			t.Errorf("ParseLint(%q) = %v, want %v", c.Name(), back, c)
		}
	}
	if CfgMissingSignal.IsLint() {
		t.Errorf("CFG codes are not lint codes")
	}
	if CfgMissingSignal.Name() != "CFG1003" {
		t.Errorf("Name() of non-lint code should be its ID, got %q", CfgMissingSignal.Name())
	}
}
