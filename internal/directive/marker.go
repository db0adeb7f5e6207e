package directive

import (
	"fmt"
	"strings"
)

// Sensitivity is the opaque sensitivity expression of a public_flat_rw
// attribute. The engine only stores and returns it.
type Sensitivity any

// Marker describes one attachment to an IR node.
type Marker struct {
	Kind MarkerKind
	Attr AttrKind    // MarkerAttr only
	Sens Sensitivity // MarkerAlwaysPublic only
}

func (m Marker) String() string {
	switch m.Kind {
	case MarkerAttr:
		return "attr:" + m.Attr.String()
	case MarkerAlwaysPublic:
		if m.Sens != nil {
			return fmt.Sprintf("always_public@(%v)", m.Sens)
		}
	}
	return m.Kind.String()
}

// FormatMarkers joins markers with spaces; "-" for none.
func FormatMarkers(ms []Marker) string {
	if len(ms) == 0 {
		return "-"
	}
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
