// Package queue provides a bounded, drop-oldest event queue used to
// hand transcript.Events from the capture engine's owning goroutine to
// a consumer (a CLI writer, an automation wrapper) without blocking
// the terminal model on a slow reader.
package queue
