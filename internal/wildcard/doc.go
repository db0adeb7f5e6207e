// Package wildcard binds names to accumulated directive data by exact name or
// by glob pattern.
//
// # Patterns
//
// A pattern is a plain string. It is a wildcard pattern when it contains '*'
// (any run of characters, including none and including '/') or '?' (exactly
// one character); every other character is literal. Matching is full-string
// and case-sensitive. Classification happens once, in Compile.
//
// # Resolver
//
// Resolver keeps literal registrations in a map and wildcard registrations in
// registration order. Resolve(name) returns a value that merges the literal
// slot for name with every wildcard slot whose pattern matches name:
//
//	mods := wildcard.NewResolver[ModuleConfig](clock, newModuleConfig)
//	mods.Register("core_*").SetPublic()
//	cfg := mods.Resolve("core_alu") // merged view, nil when nothing matches
//
// Resolved values are memoized per name. Every memo entry carries the epoch of
// the shared Clock at the time it was built; any Register or MergeFrom on any
// resolver sharing the clock advances the epoch, which makes all memo entries
// stale. Values returned by Resolve are owned by the resolver and must be
// treated as read-only.
package wildcard
