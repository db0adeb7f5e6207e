package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	origNoColor := color.NoColor
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
		color.NoColor = origNoColor
	})
	Version, GitCommit, BuildDate = v, commit, date
	color.NoColor = true
}

func TestString(t *testing.T) {
	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "hdlcfg 0.1.0-dev"},
		{"1.2.3", "abc123def4567890", "", "hdlcfg 1.2.3 (abc123def456)"},
		{"1.2.3", "abc", "2026-01-15", "hdlcfg 1.2.3 (abc) built 2026-01-15"},
		{"nightly", "", "", "hdlcfg nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, tt.commit, tt.date)
		if got := String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColoredKeepsText(t *testing.T) {
	withVersion(t, "2.0.1-rc.1", "", "")
	if got := Colored(); got != "2.0.1-rc.1" {
		t.Errorf("Colored() = %q", got)
	}
}
