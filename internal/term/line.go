package term

// Line is a single row of cells in the screen grid or scrollback history.
type Line struct {
	Cells   []Cell
	Wrapped bool // true if this line wraps into the next (no implied newline)
}

// NewLine creates a blank line of the given width.
func NewLine(width int) *Line {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = EmptyCell()
	}
	return &Line{Cells: cells}
}

// Clear resets every cell in the line to blank.
func (l *Line) Clear() {
	for i := range l.Cells {
		l.Cells[i] = EmptyCell()
	}
	l.Wrapped = false
}

// ClearRange blanks cells in [start, end).
func (l *Line) ClearRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(l.Cells) {
		end = len(l.Cells)
	}
	for i := start; i < end; i++ {
		l.Cells[i] = EmptyCell()
	}
}

// clone returns a deep copy of the line.
func (l *Line) clone() *Line {
	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	return &Line{Cells: cells, Wrapped: l.Wrapped}
}

// text renders the line's runes as a plain string, skipping wide-rune
// filler cells (Width == 0).
func (l *Line) text() string {
	runes := make([]rune, 0, len(l.Cells))
	for _, c := range l.Cells {
		if c.Width == 0 {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}
