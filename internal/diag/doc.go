// Package diag defines the diagnostic model shared by the directive engine,
// the manifest loader and the CLI.
//
// # Purpose
//
//   - Provide deterministic data structures for findings: user errors in
//     directives (CFG codes) and the lint codes of the HDL front end (LNT codes)
//     that directives switch on and off.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     Lint codes additionally carry a rule name (WIDTH, UNUSED, ...) used in
//     directive files and waivers.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Pos the finding points to.
//   - Notes – optional secondary positions/messages.
//
// # Emitting diagnostics
//
// Producers build a ReportBuilder via ReportError/ReportWarning/ReportInfo,
// optionally chain WithNote, and call Emit. BagReporter aggregates into a Bag,
// which supports sorting, deduplication and filtering; DedupReporter drops
// repeats before they reach the next reporter.
//
// Package diag does no formatting or IO. Rendering lives in cmd/hdlcfg.
package diag
