// Package capture converts term.Damage notifications into a
// churn-suppressed transcript.
//
// Strategy, applied on every damage notification:
//
//   - Emit new scrollback lines immediately: they are committed,
//     high-signal content.
//   - Emit screen lines only once they have held the same content for
//     at least the configured stability window: the screen is volatile
//     and prone to spinner/progress repaint churn.
//   - Skip the bottom VolatileRowCount rows of the screen entirely.
//   - Suppress screen-stable emissions while the terminal is in the
//     alternate screen, if so configured.
//   - Deduplicate by content fingerprint so identical lines are never
//     emitted twice.
package capture
