package diag

import (
	"hdlcfg/internal/source"
)

type Note struct {
	Pos source.Pos
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Pos
	Notes    []Note
}

func (d Diagnostic) String() string {
	return d.Primary.String() + ": " + d.Severity.String() + " " + d.Code.ID() + ": " + d.Message
}
