// Package ptyio spawns a command attached to a pseudo-terminal and
// streams its output into a term.Model, the one place in this module
// that owns a goroutine.
package ptyio
