package term

// History is the bounded, oldest-evicted scrollback ring. Lines are
// appended in the order they scroll off the top of the primary screen.
type History struct {
	lines    []*Line
	maxLines int
}

// NewHistory creates a history buffer capped at maxLines (default
// 50,000, matching spec's default max_history, if maxLines <= 0).
func NewHistory(maxLines int) *History {
	if maxLines <= 0 {
		maxLines = 50000
	}
	return &History{lines: make([]*Line, 0, maxLines), maxLines: maxLines}
}

// Add appends a line, evicting the oldest line if the buffer is full.
func (h *History) Add(line *Line) {
	h.lines = append(h.lines, line.clone())
	if len(h.lines) > h.maxLines {
		h.lines = h.lines[len(h.lines)-h.maxLines:]
	}
}

// Line returns the line at index (0 = oldest), or nil if out of range.
func (h *History) Line(index int) *Line {
	if index < 0 || index >= len(h.lines) {
		return nil
	}
	return h.lines[index]
}

// Len returns the number of lines currently retained.
func (h *History) Len() int { return len(h.lines) }

// Clear discards all history lines.
func (h *History) Clear() { h.lines = h.lines[:0] }
