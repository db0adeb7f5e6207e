// Package waiver writes lint_off waivers for warnings that survived
// filtering, in the directive file syntax of the compiler.
package waiver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	banner       = "`verilator_config"
	entryComment = "// TODO: Fix or keep to ignore?"
)

// Writer collects waiver entries in insertion order. Identical entries are
// kept once.
type Writer struct {
	entries []string
	seen    map[string]struct{}
}

func NewWriter() *Writer {
	return &Writer{seen: make(map[string]struct{})}
}

// Add records a waiver for a warning of rule with message in filename.
func (w *Writer) Add(rule, filename, message string) {
	entry := fmt.Sprintf(`lint_off -rule %s -file "*%s" -match "%s"`, rule, filename, quote(message))
	if _, ok := w.seen[entry]; ok {
		return
	}
	w.seen[entry] = struct{}{}
	w.entries = append(w.entries, entry)
}

func (w *Writer) Len() int { return len(w.entries) }

// WriteTo writes the waiver file: the banner, then every entry preceded by a
// review comment and followed by a blank line.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	cw := &countingWriter{w: out}
	bw := bufio.NewWriter(cw)
	bw.WriteString(banner + "\n\n")
	for _, e := range w.entries {
		bw.WriteString(entryComment + "\n")
		bw.WriteString(e + "\n\n")
	}
	err := bw.Flush()
	return cw.n, err
}

// WriteFile writes the waiver file to path.
func (w *Writer) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create waiver file: %w", err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write waiver file: %w", err)
	}
	return f.Close()
}

func quote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
