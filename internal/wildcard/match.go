package wildcard

import (
	"strings"

	"github.com/gobwas/glob"
)

// IsWildcard reports whether s contains a pattern metacharacter.
func IsWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// Pattern is a compiled name pattern.
type Pattern struct {
	text string
	g    glob.Glob // nil for literal patterns
}

// Compile classifies text as literal or wildcard and prepares a matcher.
func Compile(text string) Pattern {
	if !IsWildcard(text) {
		return Pattern{text: text}
	}
	g, err := glob.Compile(translate(text))
	if err != nil {
		// translate quotes everything except '*' and '?', so the glob syntax
		// is always valid.
		panic("wildcard: cannot compile " + text + ": " + err.Error())
	}
	return Pattern{text: text, g: g}
}

// translate rewrites a '*'/'?' pattern into gobwas/glob syntax with all other
// glob metacharacters quoted.
func translate(text string) string {
	var sb strings.Builder
	start := 0
	for i := 0; i < len(text); i++ {
		if c := text[i]; c == '*' || c == '?' {
			sb.WriteString(glob.QuoteMeta(text[start:i]))
			sb.WriteByte(c)
			start = i + 1
		}
	}
	sb.WriteString(glob.QuoteMeta(text[start:]))
	return sb.String()
}

func (p Pattern) String() string { return p.text }

// Wild reports whether the pattern contains metacharacters.
func (p Pattern) Wild() bool { return p.g != nil }

// Match reports whether name matches the whole pattern.
func (p Pattern) Match(name string) bool {
	if p.g == nil {
		return p.text == name
	}
	return p.g.Match(name)
}

// Match reports whether name matches pattern. It is the uncached form of
// Compile(pattern).Match(name).
func Match(pattern, name string) bool {
	return Compile(pattern).Match(name)
}
