// Package churn implements the capture engine's pluggable suppression
// policy for animation-like terminal output (spinners, progress bars,
// status chatter) that would otherwise flood the transcript.
package churn

import (
	"strings"

	"github.com/tidwall/match"
)

// Filter decides whether a normalized row of text should be withheld
// from the transcript. recent holds the most recent prior samples seen
// for the same row, oldest first; it may be empty. The default Filter
// uses it only for its high-churn heuristic.
type Filter interface {
	ShouldSuppress(text string, recent []string) bool
}

// Default is the conservative suppression policy: single-glyph spinner
// frames, trailing-spinner lines, progress bars, percent suffixes,
// ellipsis-terminated status prefixes ("loading...", "thinking...",
// "working...", "waiting...", "analyzing..."), and short lines whose
// recent samples churn through many distinct values.
type Default struct{}

// statusPrefixes are matched case-insensitively against the start of
// the line, glob-style, so "Loading" and "LOADING deps" both match
// "loading*" without a regular expression.
var statusPrefixes = []string{"loading*", "thinking*", "working*", "waiting*", "analyzing*"}

func (Default) ShouldSuppress(text string, recent []string) bool {
	if text == "" {
		return false
	}
	if isSpinnerGlyphLine(text) {
		return true
	}
	if isTrailingSpinnerLine(text) {
		return true
	}
	if isProgressBarLine(text) {
		return true
	}
	if isStatusPrefixLine(text) {
		return true
	}
	if isHighChurnLine(text, recent) {
		return true
	}
	return false
}

// isSpinnerGlyphLine is heuristic 1: the entire trimmed text is a
// single spinner glyph, or up to three bare dots.
func isSpinnerGlyphLine(s string) bool {
	if len(s) <= 3 && allDots(s) {
		return true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return isSpinnerGlyphRune(runes[0])
	}
	return false
}

// isTrailingSpinnerLine is heuristic 2: at least 3 characters, the
// last is a spinner glyph, and everything before it is ASCII letters
// and spaces with at least one letter.
func isTrailingSpinnerLine(s string) bool {
	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}
	last := runes[len(runes)-1]
	if !isSpinnerGlyphRune(last) {
		return false
	}
	hasLetter := false
	for _, c := range runes[:len(runes)-1] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c == ' ':
			// allowed filler between words
		default:
			return false
		}
	}
	return hasLetter
}

// isSpinnerGlyphRune reports whether r is a common spinner animation
// glyph: the classic ASCII rotor, a bare dot or asterisk, or a Braille
// pattern (U+2800-U+28FF), widely used by spinner libraries for
// smoother animation frames.
func isSpinnerGlyphRune(r rune) bool {
	switch r {
	case '|', '/', '\\', '-', '*', '.':
		return true
	}
	return r >= 0x2800 && r <= 0x28FF
}

func allDots(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '.' {
			return false
		}
	}
	return true
}

// isProgressBarLine is heuristic 3: a balanced [...] pair with a
// 10-or-more-character interior drawn almost entirely from the
// progress-bar alphabet, or a trailing N%.
func isProgressBarLine(s string) bool {
	if endsWithPercent(s) {
		return true
	}
	return hasProgressBarBrackets(s)
}

func hasProgressBarBrackets(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '[' {
			continue
		}
		rel := strings.IndexByte(s[i+1:], ']')
		if rel < 0 {
			continue
		}
		j := i + 1 + rel
		interior := s[i+1 : j]
		if len(interior) >= 10 && isProgressBarAlphabet(interior) {
			return true
		}
	}
	return false
}

// isProgressBarAlphabet reports whether s is drawn from the
// progress-bar character set, allowing at most one exception.
func isProgressBarAlphabet(s string) bool {
	exceptions := 0
	for _, c := range s {
		switch c {
		case '=', '-', '#', '>', ' ':
		default:
			exceptions++
			if exceptions > 1 {
				return false
			}
		}
	}
	return true
}

func endsWithPercent(s string) bool {
	if len(s) < 2 || s[len(s)-1] != '%' {
		return false
	}
	prev := s[len(s)-2]
	return prev >= '0' && prev <= '9'
}

// isStatusPrefixLine is heuristic 4: a case-insensitive status-word
// prefix ("loading", "thinking", "working", "waiting", "analyzing")
// followed by a trailing ellipsis.
func isStatusPrefixLine(s string) bool {
	if !endsWithEllipsis(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, p := range statusPrefixes {
		if match.Match(lower, p) {
			return true
		}
	}
	return false
}

func endsWithEllipsis(s string) bool {
	return len(s) >= 3 && strings.HasSuffix(s, "...")
}

// isHighChurnLine is heuristic 5: recent holds at least six prior
// samples, s is short, and the run-length-reduced distinct count of
// recent is at least 5 — a row rapidly cycling through many different
// values rather than settling.
func isHighChurnLine(s string, recent []string) bool {
	if len(recent) < 6 || len(s) > 40 {
		return false
	}
	return runLengthReducedDistinctCount(recent) >= 5
}

// runLengthReducedDistinctCount collapses consecutive duplicate
// entries in samples, then returns the number of distinct values
// remaining.
func runLengthReducedDistinctCount(samples []string) int {
	distinct := make(map[string]struct{})
	var prev string
	for i, s := range samples {
		if i == 0 || s != prev {
			distinct[s] = struct{}{}
		}
		prev = s
	}
	return len(distinct)
}
