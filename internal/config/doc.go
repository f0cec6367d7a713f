// Package config holds the four tunables that govern the terminal
// model and capture engine (history size and the capture engine's
// volatile-row/stability/alternate-screen knobs), with JSON
// serialization via gjson/sjson and an environment-variable overlay.
package config
