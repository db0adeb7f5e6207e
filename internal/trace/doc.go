// Package trace records what the directive engine and the CLI do, for
// debugging slow or surprising directive resolution.
//
// # Usage
//
//	hdlcfg lint --trace=- --trace-level=detail rules.toml build.log
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory, dumped on panic
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A Level admits events by Scope:
//
//   - LevelPhase: ScopeDriver and ScopePass (CLI command, manifest load, lint run)
//   - LevelDetail: adds ScopeStore (directive registrations)
//   - LevelDebug: adds ScopeQuery (cache materializations on the query path)
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "load", 0)
//	defer span.End("")
package trace
