// Package config loads directive manifests.
//
// A manifest is a TOML file with one array of tables per directive family:
//
//	[[lint]]
//	rule = "WIDTH"       # empty: every lint rule
//	file = "rtl/*.v"     # omitted or "*": all files, lines ignored
//	lines = [10, 20]     # inclusive; [10] is one line; omitted is the whole file
//	off = true           # default
//
//	[[inline]]
//	module = "alu*"
//	task = "helper"      # optional
//	on = false
//
//	[[attr]]
//	module = "top"
//	task = ""
//	var = "counter"
//	kind = "public_flat_rw"
//	sensitivity = "@(posedge clk)"
//
//	[[coverage]]
//	file = "rtl/top.v"   # with line, or module with block
//	line = 42
//
//	[[case]]
//	file = "rtl/alu.v"
//	line = 0             # every case statement of the file
//	full = true
//	parallel = true
package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// Manifest is a decoded directive manifest.
type Manifest struct {
	Path     string          `toml:"-"`
	Lint     []LintEntry     `toml:"lint"`
	Inline   []InlineEntry   `toml:"inline"`
	Attr     []AttrEntry     `toml:"attr"`
	Coverage []CoverageEntry `toml:"coverage"`
	Case     []CaseEntry     `toml:"case"`

	// source line of each [[table]] header, by table name
	headers map[string][]uint32
}

type LintEntry struct {
	Rule  string  `toml:"rule"`
	File  string  `toml:"file"`
	Lines []int64 `toml:"lines"`
	Off   *bool   `toml:"off"`
}

type InlineEntry struct {
	Module string `toml:"module"`
	Task   string `toml:"task"`
	On     *bool  `toml:"on"`
}

type AttrEntry struct {
	Module      string `toml:"module"`
	Task        string `toml:"task"`
	Var         string `toml:"var"`
	Kind        string `toml:"kind"`
	Sensitivity string `toml:"sensitivity"`
}

type CoverageEntry struct {
	File   string `toml:"file"`
	Line   int64  `toml:"line"`
	Module string `toml:"module"`
	Block  string `toml:"block"`
}

type CaseEntry struct {
	File     string `toml:"file"`
	Line     int64  `toml:"line"`
	Full     bool   `toml:"full"`
	Parallel bool   `toml:"parallel"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Decode(path, data)
}

// Decode parses manifest text. Unknown keys are an error.
func Decode(path string, data []byte) (*Manifest, error) {
	m := &Manifest{Path: path}
	meta, err := toml.Decode(string(data), m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	m.headers, err = scanHeaders(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	return len(m.Lint) + len(m.Inline) + len(m.Attr) + len(m.Coverage) + len(m.Case)
}

var headerRe = regexp.MustCompile(`^\s*\[\[\s*([A-Za-z_]+)\s*\]\]`)

func scanHeaders(data []byte) (map[string][]uint32, error) {
	headers := make(map[string][]uint32)
	sc := bufio.NewScanner(bytes.NewReader(data))
	var line uint32
	for sc.Scan() {
		line++
		if m := headerRe.FindSubmatch(sc.Bytes()); m != nil {
			name := string(m[1])
			headers[name] = append(headers[name], line)
		}
	}
	return headers, sc.Err()
}

// entryLine returns the header line of the i-th table named table, or 0.
func (m *Manifest) entryLine(table string, i int) uint32 {
	lines := m.headers[table]
	if i < 0 || i >= len(lines) {
		return 0
	}
	return lines[i]
}

func toInt(v int64) (int, error) {
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("line %d out of range", v)
	}
	return n, nil
}
