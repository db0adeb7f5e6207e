package directive

import "testing"

func TestParseAttrKind(t *testing.T) {
	tests := []struct {
		in   string
		want AttrKind
		ok   bool
	}{
		{"public", AttrPublic, true},
		{"public_flat_rw", AttrPublicFlatRW, true},
		{"Public-Flat-RD", AttrPublicFlatRD, true},
		{" isolate_assignments ", AttrIsolateAssignments, true},
		{"none", AttrNone, false},
		{"inline", AttrNone, false},
	}
	for _, tt := range tests {
		got, err := ParseAttrKind(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseAttrKind(%q) = %v, %v; want %v, ok=%v", tt.in, got, err, tt.want, tt.ok)
		}
	}
}

func TestMarkerKindRoundTrip(t *testing.T) {
	for k := MarkerInlineModule; k < markerKindCount; k++ {
		got, err := ParseMarkerKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseMarkerKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseMarkerKind("invalid"); err == nil {
		t.Error("invalid marker kind parsed")
	}
}

func TestFormatMarkers(t *testing.T) {
	ms := []Marker{
		{Kind: MarkerAttr, Attr: AttrPublicFlatRW},
		{Kind: MarkerAlwaysPublic, Sens: "posedge clk"},
		{Kind: MarkerFullCase},
	}
	if got, want := FormatMarkers(ms), "attr:public_flat_rw always_public@(posedge clk) full_case"; got != want {
		t.Errorf("FormatMarkers = %q, want %q", got, want)
	}
	if got := FormatMarkers(nil); got != "-" {
		t.Errorf("FormatMarkers(nil) = %q", got)
	}
}
