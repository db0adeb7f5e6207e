package source

import (
	"fmt"
	"path/filepath"
)

// Pos locates a directive or a diagnostic by file name and line.
// Line and Col are 1-based; zero means "unknown".
type Pos struct {
	File string
	Line uint32
	Col  uint32
}

// NoPos is used for diagnostics that have no meaningful location.
var NoPos = Pos{}

func (p Pos) IsValid() bool {
	return p.File != ""
}

func (p Pos) String() string {
	switch {
	case p.File == "":
		return "<unknown>"
	case p.Line == 0:
		return p.File
	case p.Col == 0:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Base returns the position with the file name reduced to its last element.
func (p Pos) Base() Pos {
	if p.File != "" {
		p.File = filepath.Base(p.File)
	}
	return p
}

// Less orders positions by file, line and column.
func (p Pos) Less(o Pos) bool {
	if p.File != o.File {
		return p.File < o.File
	}
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}
