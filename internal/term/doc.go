// Package term implements the terminal state model: a screen grid driven
// by a hand-rolled ANSI/VT parser, a bounded scrollback history, and a
// read-only view over both for downstream capture.
//
// # Architecture
//
// The package is organized around these core types:
//
//   - Model: owns the screen, history and parser, and is the single
//     mutation entry point (Feed, Resize)
//   - Screen: cell-based grid with cursor, scroll region and an
//     alternate-screen buffer
//   - History: bounded, oldest-evicted scrollback ring
//   - Parser: byte-oriented ANSI/VT scanner that drives the screen
//   - View: read-only, stateless projection of history and screen text
//   - Damage: notification describing which rows changed since the last
//     Feed or Resize call
//
// # Usage
//
//	model := term.NewModel(term.Options{Cols: 80, Rows: 24})
//	model.Subscribe(func(v term.View, d term.Damage) {
//	    // inspect v.ReadScreenLines / v.ReadHistoryLines
//	})
//	model.Feed(ptyOutput)
//
// # Thread Safety
//
// Model is not safe for concurrent use: spec requires Feed and Resize to
// run on a single owning goroutine, with Subscribe callbacks invoked
// synchronously and in registration order.
package term
