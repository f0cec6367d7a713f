package term

import "testing"

func TestModelFeedDispatchesDamage(t *testing.T) {
	m := NewModel(Options{Cols: 10, Rows: 3})
	var got []Damage
	m.Subscribe(func(v View, d Damage) { got = append(got, d) })
	m.Feed([]byte("hi"))
	if len(got) != 1 {
		t.Fatalf("expected one damage dispatch, got %d", len(got))
	}
}

func TestModelResizeSameSizeIsNoOp(t *testing.T) {
	m := NewModel(Options{Cols: 10, Rows: 3})
	calls := 0
	m.Subscribe(func(v View, d Damage) { calls++ })
	if err := m.Resize(10, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no damage dispatch for a same-size resize, got %d", calls)
	}
}

func TestModelResizeInvalidSize(t *testing.T) {
	m := NewModel(Options{Cols: 10, Rows: 3})
	if err := m.Resize(0, 3); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestModelScrollFeedsHistory(t *testing.T) {
	m := NewModel(Options{Cols: 5, Rows: 2})
	m.Feed([]byte("row1\r\nrow2\r\nrow3\r\n"))
	v := m.View()
	if v.HistoryLineCount() == 0 {
		t.Errorf("expected at least one history line after scrolling past a 2-row screen")
	}
}

func TestModelListenerPanicDoesNotStopLaterListeners(t *testing.T) {
	m := NewModel(Options{Cols: 5, Rows: 2})
	secondRan := false
	m.Subscribe(func(v View, d Damage) { panic("boom") })
	m.Subscribe(func(v View, d Damage) { secondRan = true })
	m.Feed([]byte("x"))
	if !secondRan {
		t.Errorf("expected second listener to run despite first listener panicking")
	}
}

func TestViewReadScreenLinesInvalidRange(t *testing.T) {
	m := NewModel(Options{Cols: 5, Rows: 2})
	v := m.View()
	if _, err := v.ReadScreenLines(1, 0); err != ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange for start > end, got %v", err)
	}
	if _, err := v.ReadScreenLines(0, 99); err != ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange for out-of-bounds end, got %v", err)
	}
}

func TestViewReadScreenLinesRightTrims(t *testing.T) {
	m := NewModel(Options{Cols: 5, Rows: 2})
	m.Feed([]byte("hi"))
	v := m.View()
	lines, err := v.ReadScreenLines(0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0] != "hi" {
		t.Errorf("expected right-trimmed %q, got %q", "hi", lines[0])
	}
}
