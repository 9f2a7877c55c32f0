// Package instance reads and writes 0/1 knapsack instances.
//
// Two encodings are supported:
//
//   - Text — the classic whitespace format: a header "n capacity" followed by
//     one "value weight" record per line. Blank lines and lines starting with
//     '#' are ignored.
//   - YAML — a "capacity" scalar and an "items" list of {value, weight}
//     mappings; the item count is derived from the list.
//
// Load and Save pick the encoding from the file extension (.yaml/.yml for
// YAML, anything else for text) after stripping an optional compression
// suffix (.gz for gzip, .zst for zstd).
//
// The codec only checks syntax. Semantic validation (count mismatch,
// non-positive weights, negative values or capacity) is left to
// knapsack.NewCatalog, so that every malformed instance is reported with
// knapsack.ErrMalformedInstance regardless of how it was read.
//
// Errors:
//   - ErrSyntax — unparsable text or YAML; wrapped with the line number.
//   - ErrUnsupported — an encoding option this package does not handle.
package instance
