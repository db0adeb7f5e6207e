// Package suppress keeps the line-ranged on/off toggles of diagnostic codes
// and answers, per source line, which toggles take effect.
//
// Registrations are grouped by filename pattern. The first query for a file
// merges the event lists of every matching pattern into one sorted sequence
// and walks it with a cursor. Queries for one file must come with
// non-decreasing line numbers; Restart begins a new walk.
package suppress
