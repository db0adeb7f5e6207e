package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"hdlcfg/internal/diag"
	"hdlcfg/internal/source"
)

// Pretty prints the diagnostics of bag, one per line:
//
//	<path>:<line>: <SEV> <ID>: <message>
//
// followed by indented notes. Call bag.Sort() first for a stable order.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	sevColors := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	locColor := color.New(color.Bold)
	noteColor := color.New(color.FgBlue)
	for _, c := range sevColors {
		setColor(c, opts.Color)
	}
	setColor(locColor, opts.Color)
	setColor(noteColor, opts.Color)

	items := bag.Items()
	shown := len(items)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}
	for _, d := range items[:shown] {
		sev := sevColors[d.Severity]
		if sev == nil {
			sev = color.New()
			setColor(sev, false)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			locColor.Sprint(location(d.Primary, opts.PathMode, opts.BaseDir)),
			sev.Sprint(d.Severity.String()),
			d.Code.ID(),
			d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", noteColor.Sprint("note:"),
				location(n.Pos, opts.PathMode, opts.BaseDir), n.Msg)
		}
	}
	if hidden := len(items) - shown; hidden > 0 {
		fmt.Fprintf(w, "... and %d more diagnostics\n", hidden)
	}
}

func location(p source.Pos, mode PathMode, base string) string {
	p.File = formatPath(p.File, mode, base)
	return p.String()
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
