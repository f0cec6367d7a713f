// Package assist is a thin automation wrapper around a PTY-attached
// command: it watches the transcript the capture engine produces and
// uses it as context for an anthropic-sdk-go chat session, the same
// "drive the CLI, judge the transcript" shape as a human operator
// watching the same pane.
package assist
