package queue

import (
	"testing"
	"time"

	"github.com/dshills/captty/internal/transcript"
)

func event(text string) transcript.Event {
	return transcript.NewAppend(text, time.Now(), transcript.Scrollback)
}

func TestPushPopFIFOOrder(t *testing.T) {
	q := New(4)
	q.Push(event("a"))
	q.Push(event("b"))

	first, ok := q.Pop()
	if !ok || first.Text != "a" {
		t.Fatalf("first Pop = (%v, %v), want (a, true)", first.Text, ok)
	}
	second, ok := q.Pop()
	if !ok || second.Text != "b" {
		t.Fatalf("second Pop = (%v, %v), want (b, true)", second.Text, ok)
	}
}

func TestPopOnEmptyReturnsFalse(t *testing.T) {
	q := New(2)
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop on empty queue returned ok=true")
	}
}

func TestPushDropsOldestWhenFull(t *testing.T) {
	q := New(2)
	q.Push(event("a"))
	q.Push(event("b"))
	q.Push(event("c"))

	if got := q.DroppedCount(); got != 1 {
		t.Errorf("DroppedCount = %d, want 1", got)
	}
	if got := q.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	first, _ := q.Pop()
	if first.Text != "b" {
		t.Errorf("oldest surviving event = %q, want %q", first.Text, "b")
	}
}

func TestNewClampsNonPositiveCapacity(t *testing.T) {
	q := New(0)
	q.Push(event("a"))
	q.Push(event("b"))
	if got := q.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 for clamped capacity", got)
	}
}
