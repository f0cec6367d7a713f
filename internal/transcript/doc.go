// Package transcript defines the wire-level event emitted by the
// capture engine: a single append of normalized text, tagged with the
// source that produced it (committed scrollback vs. a screen row that
// held still long enough to be considered settled).
package transcript
