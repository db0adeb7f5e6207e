package directive

import (
	"fmt"
	"strings"
)

// AttrKind is the kind of a variable attribute directive.
type AttrKind uint8

const (
	AttrNone AttrKind = iota
	AttrPublic
	AttrPublicFlat
	AttrPublicFlatRD
	AttrPublicFlatRW
	AttrIsolateAssignments
	AttrSFormat
	AttrClockEnable
	AttrClocker
	AttrNoClocker
	attrKindCount
)

var attrNames = [...]string{
	AttrNone:               "none",
	AttrPublic:             "public",
	AttrPublicFlat:         "public_flat",
	AttrPublicFlatRD:       "public_flat_rd",
	AttrPublicFlatRW:       "public_flat_rw",
	AttrIsolateAssignments: "isolate_assignments",
	AttrSFormat:            "sformat",
	AttrClockEnable:        "clock_enable",
	AttrClocker:            "clocker",
	AttrNoClocker:          "no_clocker",
}

func (k AttrKind) String() string {
	if k < attrKindCount {
		return attrNames[k]
	}
	return fmt.Sprintf("AttrKind(%d)", uint8(k))
}

func (k AttrKind) valid() bool { return k > AttrNone && k < attrKindCount }

// ParseAttrKind looks up an attribute kind by its directive name.
// Dashes are accepted in place of underscores.
func ParseAttrKind(s string) (AttrKind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k := AttrPublic; k < attrKindCount; k++ {
		if attrNames[k] == name {
			return k, nil
		}
	}
	return AttrNone, fmt.Errorf("unknown attribute kind %q", s)
}

// MarkerKind is what the caller attaches to an IR node.
type MarkerKind uint8

const (
	MarkerInvalid MarkerKind = iota
	MarkerInlineModule
	MarkerNoInlineModule
	MarkerPublicModule
	MarkerNoInlineTask
	MarkerPublicTask
	MarkerIsolateAssign
	MarkerAttr         // variable attribute, see Marker.Attr
	MarkerAlwaysPublic // follows a public_flat_rw attribute, carries Sens
	MarkerCoverageBlockOff
	MarkerFullCase
	MarkerParallelCase
	markerKindCount
)

var markerNames = [...]string{
	MarkerInvalid:          "invalid",
	MarkerInlineModule:     "inline_module",
	MarkerNoInlineModule:   "no_inline_module",
	MarkerPublicModule:     "public_module",
	MarkerNoInlineTask:     "no_inline_task",
	MarkerPublicTask:       "public_task",
	MarkerIsolateAssign:    "isolate_assign",
	MarkerAttr:             "attr",
	MarkerAlwaysPublic:     "always_public",
	MarkerCoverageBlockOff: "coverage_block_off",
	MarkerFullCase:         "full_case",
	MarkerParallelCase:     "parallel_case",
}

func (k MarkerKind) String() string {
	if k < markerKindCount {
		return markerNames[k]
	}
	return fmt.Sprintf("MarkerKind(%d)", uint8(k))
}

// ParseMarkerKind is the inverse of MarkerKind.String.
func ParseMarkerKind(s string) (MarkerKind, error) {
	for k := MarkerInlineModule; k < markerKindCount; k++ {
		if markerNames[k] == s {
			return k, nil
		}
	}
	return MarkerInvalid, fmt.Errorf("unknown marker kind %q", s)
}
