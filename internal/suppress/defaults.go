package suppress

import (
	"sort"

	"hdlcfg/internal/diag"
)

// Defaults holds the process-wide enabled state of each code. Codes start
// enabled.
type Defaults struct {
	off map[diag.Code]bool
}

// Set switches code on or off for every file that has no toggle of its own.
func (d *Defaults) Set(code diag.Code, on bool) {
	if d.off == nil {
		d.off = make(map[diag.Code]bool)
	}
	if on {
		delete(d.off, code)
		return
	}
	d.off[code] = true
}

func (d *Defaults) Enabled(code diag.Code) bool {
	return !d.off[code]
}

// Disabled returns the globally disabled codes in ascending order.
func (d *Defaults) Disabled() []diag.Code {
	out := make([]diag.Code, 0, len(d.off))
	for c := range d.off {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d *Defaults) reset() { d.off = nil }
