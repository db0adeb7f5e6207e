package suppress

import (
	"fmt"

	"hdlcfg/internal/diag"
)

// Event switches Code on or off starting at Line.
type Event struct {
	Line int
	Code diag.Code
	On   bool
}

func (e Event) String() string {
	sense := "off"
	if e.On {
		sense = "on"
	}
	return fmt.Sprintf("%d:%s:%s", e.Line, e.Code.Name(), sense)
}

// before orders events by line, then code, with On ahead of Off so that an
// On/Off pair on the same line ends up Off.
func (e Event) before(o Event) bool {
	if e.Line != o.Line {
		return e.Line < o.Line
	}
	if e.Code != o.Code {
		return e.Code < o.Code
	}
	return e.On && !o.On
}
