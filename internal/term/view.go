package term

// View is a read-only, stateless projection over a Model's history and
// screen. It borrows the Model and must not be retained past the
// Listener call it was handed to.
type View struct {
	m *Model
}

// HistoryLineCount returns the number of lines currently in scrollback.
func (v View) HistoryLineCount() int { return v.m.history.Len() }

// ScreenRowCount returns the number of rows in the active screen buffer.
func (v View) ScreenRowCount() int { return v.m.screen.Height() }

// ReadHistoryLines returns right-trimmed plain text for history lines
// [start, end). Returns ErrInvalidRange if the range is invalid.
func (v View) ReadHistoryLines(start, end int) ([]string, error) {
	n := v.m.history.Len()
	if start < 0 || end < start || end > n {
		return nil, ErrInvalidRange
	}
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, rightTrim(v.m.history.Line(i).text()))
	}
	return out, nil
}

// ReadScreenLines returns right-trimmed plain text for screen rows
// [start, end). Returns ErrInvalidRange if the range is invalid.
func (v View) ReadScreenLines(start, end int) ([]string, error) {
	n := v.m.screen.Height()
	if start < 0 || end < start || end > n {
		return nil, ErrInvalidRange
	}
	out := make([]string, 0, end-start)
	for y := start; y < end; y++ {
		line := &Line{Cells: v.m.screen.Line(y)}
		out = append(out, rightTrim(line.text()))
	}
	return out, nil
}

// AlternateScreen reports whether the screen is currently in the
// alternate-screen buffer.
func (v View) AlternateScreen() bool { return v.m.screen.AlternateScreen() }

func rightTrim(s string) string {
	end := len(s)
	for end > 0 {
		switch s[end-1] {
		case ' ', '\t', 0:
			end--
		default:
			return s[:end]
		}
	}
	return s[:end]
}
