package term

import "testing"

func TestNewHistoryDefaultCap(t *testing.T) {
	h := NewHistory(0)
	if h.maxLines != 50000 {
		t.Errorf("expected default cap 50000, got %d", h.maxLines)
	}
}

func TestHistoryAdd(t *testing.T) {
	h := NewHistory(10)
	h.Add(NewLine(4))
	if h.Len() != 1 {
		t.Errorf("expected len 1, got %d", h.Len())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	for i := 0; i < 3; i++ {
		l := NewLine(1)
		l.Cells[0].Rune = rune('a' + i)
		h.Add(l)
	}
	if h.Len() != 2 {
		t.Errorf("expected len 2 after eviction, got %d", h.Len())
	}
	if h.Line(0).Cells[0].Rune != 'b' {
		t.Errorf("expected oldest retained line to be 'b', got %q", h.Line(0).Cells[0].Rune)
	}
}

func TestHistoryLineOutOfRange(t *testing.T) {
	h := NewHistory(4)
	if h.Line(0) != nil {
		t.Errorf("expected nil for out-of-range index")
	}
	if h.Line(-1) != nil {
		t.Errorf("expected nil for negative index")
	}
}
